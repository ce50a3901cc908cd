package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"taskdeck/internal/service"
	"taskdeck/internal/tasklist"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a 1-based task number from args. The number refers
// to the task's position in `taskdeck list` output.
func ParseTaskRef(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	ref := args[0]
	if !isAllDigits(ref) {
		return 0, fmt.Errorf("invalid task reference: %s", ref)
	}
	num, err := strconv.Atoi(ref)
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task reference: %s", ref)
	}
	return num, nil
}

// resolveTaskByNumber fetches the current list and returns the task at the
// given 1-based position.
func resolveTaskByNumber(ctx context.Context, repo *tasklist.Repository, num int) (service.Task, error) {
	if err := repo.List(ctx); err != nil {
		return service.Task{}, err
	}
	tasks := repo.Store().Tasks()
	if num < 1 || num > len(tasks) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1], nil
}

// isAllDigits checks if a non-empty string contains only digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
