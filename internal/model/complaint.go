package model

// Complaint is a guest feedback record.  Complaints are identified by
// a sequential numeric ID and carry the free-form type text plus a
// 1-5 rating.  The room number is kept as entered by the guest and is
// not cross-checked against the catalog.
//
// Fields:
//  ID            – sequential complaint identifier.
//  Username      – full name of the guest who filed the complaint.
//  ContactNumber – 10-digit phone number for follow-up.
//  RoomNumber    – room the complaint refers to, as a string.
//  ComplaintType – short description of the issue, at least 3 chars.
//  Rating        – guest satisfaction rating from 1 to 5.
type Complaint struct {
    ID            int    `json:"complaint_id"`
    Username      string `json:"username"`
    ContactNumber string `json:"contact_number"`
    RoomNumber    string `json:"room_number"`
    ComplaintType string `json:"complaint_type"`
    Rating        int    `json:"rating"`
}
