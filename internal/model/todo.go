package model

type ItemStatus string

const (
	ItemStatusPending    ItemStatus = "PENDING"
	ItemStatusInProgress ItemStatus = "IN-PROGRESS"
	ItemStatusDone       ItemStatus = "DONE"
)

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusInProgress, ItemStatusDone:
		return true
	}
	return false
}

type List struct {
	ID          string  `json:"id" doc:"Unique identifier for the list"`
	Name        string  `json:"name" doc:"Name of the list"`
	Description *string `json:"description" doc:"Optional description of the list; null when unset"`
}

// ListInput carries list fields as a client supplied them; nil means absent
// and is stored as NULL. It is also the create and update echo, which omits
// absent fields.
type ListInput struct {
	ID          *string `json:"id,omitempty" doc:"Identifier as supplied"`
	Name        *string `json:"name,omitempty" doc:"Name as supplied"`
	Description *string `json:"description,omitempty" doc:"Description as supplied"`
}

type Item struct {
	ID          string     `json:"id" doc:"Unique identifier for the item"`
	ListID      string     `json:"list_id" doc:"Identifier of the list the item belongs to"`
	Description string     `json:"description" doc:"Description of the todo item"`
	Status      ItemStatus `json:"status" enum:"PENDING,IN-PROGRESS,DONE" default:"PENDING" doc:"Current status of the item"`
}
