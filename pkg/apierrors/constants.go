package apierrors

const (
	MsgInvalidTaskID         = "invalidTaskID"
	MsgInvalidSubtaskID      = "invalidSubtaskID"
	MsgInvalidTaskPayload    = "invalidTaskPayload"
	MsgTaskNotFound          = "taskNotFound"
	MsgTitleRequired         = "titleRequired"
	MsgDueDateRequired       = "dueDateRequired"
	MsgInvalidDueDate        = "invalidDueDate"
	MsgInvalidPriority       = "invalidPriority"
	MsgInvalidStatus         = "invalidStatus"
	MsgNoUpdateFields        = "noUpdateFields"
	MsgEmailRequired         = "emailRequired"
	MsgInvalidReorderPayload = "invalidReorderPayload"
	MsgSubtaskTitleRequired  = "subtaskTitleRequired"
	MsgFailListTask          = "errorListTask"
	MsgFailDashboard         = "failDashboard"
	MsgFailGetTask           = "failGetTask"
	MsgFailCreateTask        = "failCreateTask"
	MsgFailUpdateTask        = "failUpdateTask"
	MsgFailShareTask         = "failShareTask"
	MsgFailReorderTasks      = "failReorderTasks"
	MsgFailListSubtasks      = "failListSubtasks"
	MsgFailCreateSubtask     = "failCreateSubtask"
	MsgFailUpdateSubtask     = "failUpdateSubtask"
	MsgFailDeleteSubtask     = "failDeleteSubtask"
)
