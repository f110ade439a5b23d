package rankings

import (
	"errors"
	"fmt"
)

// ErrPollNotFound is matched by every SelectionError.
var ErrPollNotFound = errors.New("poll not found")

// SelectionError reports that no poll of the requested kind exists in a document.
type SelectionError struct {
	Choice  Choice
	Message string
}

func (e *SelectionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("no %s poll found", e.Choice)
}

func (e *SelectionError) Is(target error) bool {
	return target == ErrPollNotFound
}

// AsSelectionError attempts to unwrap an error into a SelectionError.
func AsSelectionError(err error) (*SelectionError, bool) {
	var selErr *SelectionError
	if errors.As(err, &selErr) {
		return selErr, true
	}
	return nil, false
}

func notFound(choice Choice) *SelectionError {
	switch choice {
	case ChoiceCFP:
		return &SelectionError{
			Choice:  choice,
			Message: "CFP rankings not found: the selection committee has not published rankings for this season yet",
		}
	case ChoiceAP:
		return &SelectionError{Choice: choice, Message: "AP poll not found in rankings response"}
	case ChoiceCoaches:
		return &SelectionError{Choice: choice, Message: "Coaches poll not found in rankings response"}
	default:
		return &SelectionError{Choice: choice, Message: "no suitable poll found in rankings response"}
	}
}
