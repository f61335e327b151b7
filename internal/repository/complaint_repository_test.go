package repository

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestComplaintAddAndList(t *testing.T) {
    log := NewComplaintRepo()

    first, err := log.Add("Customer One", "0123456789", "101", "Noisy air conditioning", 2)
    require.NoError(t, err)
    assert.Equal(t, 1, first.ID)

    second, err := log.Add("Customer One", "0123456789", "201", "Cold shower", 1)
    require.NoError(t, err)
    assert.Equal(t, 2, second.ID)

    all := log.List()
    require.Len(t, all, 2)
    assert.Equal(t, "Noisy air conditioning", all[0].ComplaintType)
}

func TestComplaintValidation(t *testing.T) {
    log := NewComplaintRepo()

    cases := []struct {
        name, contact, room, ctype string
        rating                     int
    }{
        {"short contact", "12345", "101", "Broken lamp", 3},
        {"contact with letters", "012345678x", "101", "Broken lamp", 3},
        {"room too long", "0123456789", "1001", "Broken lamp", 3},
        {"room not numeric", "0123456789", "10a", "Broken lamp", 3},
        {"type too short", "0123456789", "101", "ab", 3},
        {"rating too low", "0123456789", "101", "Broken lamp", 0},
        {"rating too high", "0123456789", "101", "Broken lamp", 6},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            _, err := log.Add("Customer One", tc.contact, tc.room, tc.ctype, tc.rating)
            assert.ErrorIs(t, err, ErrInvalidComplaint)
        })
    }
}

func TestComplaintDeleteByUsername(t *testing.T) {
    log := NewComplaintRepo()

    _, err := log.Add("Customer One", "0123456789", "101", "Broken lamp", 3)
    require.NoError(t, err)
    _, err = log.Add("Customer Two", "0123456789", "201", "Broken lamp", 3)
    require.NoError(t, err)
    _, err = log.Add("Customer One", "0123456789", "301", "Broken lamp", 3)
    require.NoError(t, err)

    assert.Equal(t, 2, log.DeleteByUsername("Customer One"))
    remaining := log.List()
    require.Len(t, remaining, 1)
    assert.Equal(t, "Customer Two", remaining[0].Username)

    next, err := log.Add("Customer Three", "0123456789", "102", "Broken lamp", 3)
    require.NoError(t, err)
    assert.Equal(t, 4, next.ID, "IDs keep counting after deletions")
}
