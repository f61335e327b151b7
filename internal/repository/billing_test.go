package repository

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestComputeBill(t *testing.T) {
    assert.Equal(t, 150.0, ComputeBill(day(t, "2025-04-10"), day(t, "2025-04-13"), 50))
    assert.Equal(t, 80.0, ComputeBill(day(t, "2025-04-10"), day(t, "2025-04-11"), 80))
    assert.Equal(t, 1050.0, ComputeBill(day(t, "2025-04-10"), day(t, "2025-04-17"), 150))
}

func TestComputeBillChargesAtLeastOneNight(t *testing.T) {
    // A degenerate zero-length stay still bills a single night.
    assert.Equal(t, 50.0, ComputeBill(day(t, "2025-04-10"), day(t, "2025-04-10"), 50))
}
