package entity

import "time"

type TaskPriority int

const (
	TaskPriorityLow TaskPriority = iota + 1
	TaskPriorityMedium
	TaskPriorityHigh
	TaskPriorityCritical
)

var taskPriorities = enumSet[TaskPriority]{label: "task priority", names: []string{
	"Low", "Medium", "High", "Critical",
}}

func (p TaskPriority) String() string { return taskPriorities.name(p) }
func (p TaskPriority) Valid() bool { return taskPriorities.valid(p) }
func (p TaskPriority) MarshalJSON() ([]byte, error) { return taskPriorities.marshal(p) }
func (p *TaskPriority) UnmarshalJSON(b []byte) (err error) {
	*p, err = taskPriorities.unmarshal(b)
	return err
}
func ParseTaskPriority(s string) (TaskPriority, error) { return taskPriorities.parse(s) }

type TaskStatus int

const (
	TaskStatusTodo TaskStatus = iota + 1
	TaskStatusInProgress
	TaskStatusCompleted
	TaskStatusCancelled
)

var taskStatuses = enumSet[TaskStatus]{label: "task status", names: []string{
	"Todo", "InProgress", "Completed", "Cancelled",
}}

func (s TaskStatus) String() string { return taskStatuses.name(s) }
func (s TaskStatus) Valid() bool { return taskStatuses.valid(s) }
func (s TaskStatus) MarshalJSON() ([]byte, error) { return taskStatuses.marshal(s) }
func (s *TaskStatus) UnmarshalJSON(b []byte) (err error) {
	*s, err = taskStatuses.unmarshal(b)
	return err
}
func ParseTaskStatus(s string) (TaskStatus, error) { return taskStatuses.parse(s) }

type TaskType int

const (
	TaskTypeCall TaskType = iota + 1
	TaskTypeEmail
	TaskTypeMeeting
	TaskTypeFollowUp
	TaskTypeOther
)

var taskTypes = enumSet[TaskType]{label: "task type", names: []string{
	"Call", "Email", "Meeting", "FollowUp", "Other",
}}

func (t TaskType) String() string { return taskTypes.name(t) }
func (t TaskType) Valid() bool { return taskTypes.valid(t) }
func (t TaskType) MarshalJSON() ([]byte, error) { return taskTypes.marshal(t) }
func (t *TaskType) UnmarshalJSON(b []byte) (err error) {
	*t, err = taskTypes.unmarshal(b)
	return err
}
func ParseTaskType(s string) (TaskType, error) { return taskTypes.parse(s) }

// Task tarea asignada a un empleado, opcionalmente ligada a un cliente.
type Task struct {
	ID                 string
	AssignedEmployeeID string
	CustomerID         *string
	Title              string
	Description        string
	DueDate            time.Time
	Priority           TaskPriority
	Status             TaskStatus
	Type               TaskType
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}
