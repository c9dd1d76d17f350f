package models

import "time"

// CaseStatus is the lifecycle state of a case.
type CaseStatus string

const (
	CaseStatusOpen       CaseStatus = "Open"
	CaseStatusInProgress CaseStatus = "In Progress"
	CaseStatusClosed     CaseStatus = "Closed"
)

// IsValid reports whether s is one of the known statuses.
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusOpen, CaseStatusInProgress, CaseStatusClosed:
		return true
	}
	return false
}

// CasePriority is the urgency of a case.
type CasePriority string

const (
	CasePriorityHigh   CasePriority = "High"
	CasePriorityMedium CasePriority = "Medium"
	CasePriorityLow    CasePriority = "Low"
)

// IsValid reports whether p is one of the known priorities.
func (p CasePriority) IsValid() bool {
	switch p {
	case CasePriorityHigh, CasePriorityMedium, CasePriorityLow:
		return true
	}
	return false
}

// Case is a tracked work item.
type Case struct {
	// ID is assigned by the server on creation and never changes.
	ID string `json:"_id"`

	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      CaseStatus   `json:"status"`
	Priority    CasePriority `json:"priority"`

	// CreatedAt is set once on creation. UpdatedAt is refreshed on
	// every successful update and is never earlier than CreatedAt.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Case model.
func (c Case) TableName() string {
	return "cases"
}

// CaseInput is the body of a create request. Status and Priority are
// optional and default to Open and Medium.
type CaseInput struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      CaseStatus   `json:"status,omitempty"`
	Priority    CasePriority `json:"priority,omitempty"`
}

// CaseUpdate is the body of an update request. Blank fields are left
// unchanged.
type CaseUpdate struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Status      CaseStatus   `json:"status,omitempty"`
	Priority    CasePriority `json:"priority,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u CaseUpdate) IsEmpty() bool {
	return u.Title == "" && u.Description == "" && u.Status == "" && u.Priority == ""
}

// CaseListRequest selects one page of cases. Page is 1-indexed.
type CaseListRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows skipped before the page starts.
func (r CaseListRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// CasePage is one page of cases together with the total case count.
type CasePage struct {
	Cases      []Case
	TotalCount int64
}
