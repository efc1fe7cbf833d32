package models

import "time"

// ServiceRequest is one repair request submitted through the contact form.
// Requests are never linked to a customer account by id: ownership is decided
// later by matching phone or name against the logged-in user.
type ServiceRequest struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	Issue        string    `json:"issue"`
	Status       string    `json:"status"`
	Date         time.Time `json:"date"`
}
