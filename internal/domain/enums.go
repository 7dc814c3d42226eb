package domain

// ReviewStatus represents the editorial lifecycle of a flashcard.
type ReviewStatus string

const (
	ReviewStatusNew       ReviewStatus = "NEW"
	ReviewStatusToCorrect ReviewStatus = "TO_CORRECT"
	ReviewStatusApproved  ReviewStatus = "APPROVED"
	ReviewStatusRejected  ReviewStatus = "REJECTED"
)

func (s ReviewStatus) String() string { return string(s) }

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusNew, ReviewStatusToCorrect, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// CreationSource records how a flashcard was created.
type CreationSource string

const (
	CreationSourceManual CreationSource = "MANUAL"
	CreationSourceAI     CreationSource = "AI"
)

func (s CreationSource) String() string { return string(s) }

func (s CreationSource) IsValid() bool {
	switch s {
	case CreationSourceManual, CreationSourceAI:
		return true
	}
	return false
}
