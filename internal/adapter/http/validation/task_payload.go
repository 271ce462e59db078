package validation

import (
	"bytes"
	"encoding/json"
	"time"

	"agenda/internal/adapter/http/dto"
	"agenda/internal/core/domain"
)

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	var dueDate *time.Time
	if req.DueDate != "" {
		parsedDueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, err
		}
		dueDate = &parsedDueDate
	}

	var priority *domain.Priority
	if req.Priority != nil {
		value := domain.Priority(*req.Priority)
		priority = &value
	}

	return domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    priority,
	}, nil
}

// BuildUpdateTaskInput records which fields the body carried. A field sent as
// null is treated as absent. Empty strings are kept as present so the domain
// decides whether they apply.
func BuildUpdateTaskInput(body []byte) (domain.UpdateTaskInput, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return domain.UpdateTaskInput{}, domain.ErrInvalidPayload
	}

	var req dto.UpdateTaskRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return domain.UpdateTaskInput{}, domain.ErrInvalidPayload
	}

	var input domain.UpdateTaskInput

	if isPresent(raw, "title") {
		input.Title = domain.Some(*req.Title)
	}
	if isPresent(raw, "description") {
		input.Description = domain.Some(*req.Description)
	}
	if isPresent(raw, "dueDate") {
		var dueDate time.Time
		if *req.DueDate != "" {
			parsedDueDate, err := parseDueDate(*req.DueDate)
			if err != nil {
				return domain.UpdateTaskInput{}, err
			}
			dueDate = parsedDueDate
		}
		input.DueDate = domain.Some(dueDate)
	}
	if isPresent(raw, "completed") {
		input.Completed = domain.Some(*req.Completed)
	}
	if isPresent(raw, "status") {
		input.Status = domain.Some(*req.Status)
	}
	if isPresent(raw, "priority") {
		input.Priority = domain.Some(domain.Priority(*req.Priority))
	}

	return input, nil
}

// BuildReorderInput requires a "tasks" array whose items all carry an id and
// a position.
func BuildReorderInput(body []byte) ([]domain.TaskPosition, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || !isPresent(raw, "tasks") {
		return nil, domain.ErrInvalidReorderPayload
	}

	var items []dto.ReorderTaskItem
	if err := json.Unmarshal(raw["tasks"], &items); err != nil {
		return nil, domain.ErrInvalidReorderPayload
	}

	positions := make([]domain.TaskPosition, 0, len(items))
	for _, item := range items {
		if item.ID == nil || item.Position == nil {
			return nil, domain.ErrInvalidReorderPayload
		}
		positions = append(positions, domain.TaskPosition{ID: *item.ID, Position: *item.Position})
	}

	return positions, nil
}

// ParseDateParam parses an optional YYYY-MM-DD query value. Empty yields the
// zero time.
func ParseDateParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return parseDueDate(value)
}

func parseDueDate(value string) (time.Time, error) {
	if parsed, err := domain.ParseDate(value); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return domain.CalendarDate(parsed), nil
	}
	return time.Time{}, domain.ErrInvalidDueDate
}

func isPresent(raw map[string]json.RawMessage, field string) bool {
	value, ok := raw[field]
	return ok && !isJSONNull(value)
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
