package model

import "errors"

var (
	// ErrAssignmentExists indicates that an assignment with the given ID already exists.
	ErrAssignmentExists = errors.New("assignment already exists")
	// ErrAssignmentNotFound indicates that the requested assignment does not exist.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrAssignmentApproved indicates that the assignment is already approved and cannot be modified.
	ErrAssignmentApproved = errors.New("assignment is approved")
	// ErrReviewerNotAssigned indicates that the user is not a member of this assignment.
	ErrReviewerNotAssigned = errors.New("reviewer is not assigned to this assignment")
	// ErrReviewerAlreadyAssigned indicates that the reviewer is already a member of this assignment.
	ErrReviewerAlreadyAssigned = errors.New("reviewer already assigned to this assignment")
	// ErrReviewerNotAssignable indicates that the replacement reviewer fails the matching eligibility check.
	ErrReviewerNotAssignable = errors.New("replacement reviewer is not eligible for this assignment")
	// ErrInvalidAssignmentID indicates that the provided assignment ID is invalid (e.g., empty).
	ErrInvalidAssignmentID = errors.New("invalid assignment ID")
	// ErrInvalidDates indicates an unparsable or inverted review period.
	ErrInvalidDates = errors.New("invalid review period")
	// ErrEmptyTeam indicates that the reviewer list is empty.
	ErrEmptyTeam = errors.New("reviewer list cannot be empty")
)
