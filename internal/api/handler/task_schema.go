package handler

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=todo in_progress done"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
}

// updateTaskRequest is a field-level patch: absent fields stay nil and leave
// the stored value untouched.
type updateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status"      validate:"omitempty,oneof=todo in_progress done"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high"`
}

type listTasksQuery struct {
	Status   string `query:"status"   validate:"omitempty,oneof=todo in_progress done"`
	Priority string `query:"priority" validate:"omitempty,oneof=low medium high"`
	Search   string `query:"search"`
}
