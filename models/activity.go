package models

// Activity is a single work item returned by the activities endpoint.
type Activity struct {
	ActivityID   string `json:"activity_id"`
	Name         string `json:"name"`
	ProjectCode  string `json:"project_code"`
	Status       string `json:"status"`
	DueDate      string `json:"due_date"`
	AssignedUser string `json:"assigned_user"`
}

// ActivitySummary is the individual-contributor view of the activities
// endpoint: the activity list plus headline counters shown on the home
// screen.
type ActivitySummary struct {
	Activities     []Activity `json:"a_list"`
	ProjectCount   int        `json:"project_count"`
	ReviewCount    int        `json:"review_count"`
	CompletedCount int        `json:"completed_count"`
	PendingCount   int        `json:"pending_count"`
	OverDueCount   int        `json:"over_due_count"`
}

// ManagerActivitySummary is the manager view of the same endpoint, selected
// by call_mode. The field set differs from the IC view.
type ManagerActivitySummary struct {
	Activities   []Activity `json:"activity_list"`
	OverDueCount int        `json:"over_due_count"`
	DueToday     int        `json:"due_today"`
	NotDueCount  int        `json:"not_due_count"`
}

// QCLine is one quality-check line item of an activity.
type QCLine struct {
	QCName   string `json:"qc_name"`
	QCValue  string `json:"qc_value"`
	QCActual string `json:"qc_actual"`
}

// InventoryLine is one consumption/production line item of an activity,
// returned by the activity QC endpoint with call_mode INV_IN or INV_OUT.
type InventoryLine struct {
	ItemNumber          string `json:"item_number"`
	ItemName            string `json:"item_name"`
	ItemBaseUnit        string `json:"item_base_unit"`
	FlowType            string `json:"flow_type"`
	AllocatedQty        string `json:"allocated_qty"`
	AlreadyConsumedQty  string `json:"already_consumed_qty"`
	CurrConsumedQty     string `json:"curr_consumed_quantity"`
}

// ActivityInventoryUpdate is the payload committed through the
// activity-inventory endpoint. ItemList quantities are decimal strings.
type ActivityInventoryUpdate struct {
	ActivityID string              `json:"activity_id"`
	CallMode   string              `json:"call_mode"`
	ItemList   []ItemQuantityEntry `json:"item_list,omitempty"`
	QCActual   string              `json:"qc_actual,omitempty"`
}

// ItemQuantityEntry pairs an item number with the quantity being committed.
type ItemQuantityEntry struct {
	ItemNumber   string `json:"item_number"`
	CurrQuantity string `json:"curr_quantity"`
}
