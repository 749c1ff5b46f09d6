package models

import "time"

// Review is append-only: no edits, no deletes, no ownership enforcement.
// Date is stamped by the review store at insertion.
type Review struct {
	WorkshopID int64     `json:"workshopId"`
	Author     string    `json:"author"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	Date       time.Time `json:"date"`
}
