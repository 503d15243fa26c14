package chat

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type PostMessageCommand struct {
	ConversationID ConversationID `validate:"required"`
	Sender         ParticipantID  `validate:"required"`
	Content        string         `validate:"required"`
}

// Normalize trims the content. Validation runs on the trimmed value so
// whitespace-only content is rejected.
func (c PostMessageCommand) Normalize() PostMessageCommand {
	c.Content = strings.TrimSpace(c.Content)
	return c
}

// Validate checks required fields and that the content does not exceed
// maxContentLength runes. A non-positive limit disables the length check.
func (c PostMessageCommand) Validate(maxContentLength int) error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if maxContentLength > 0 {
		return validate.Var(c.Content, fmt.Sprintf("max=%d", maxContentLength))
	}
	return nil
}

type ResolveDirectCommand struct {
	Initiator ParticipantID `validate:"required"`
	Peer      ParticipantID `validate:"required,nefield=Initiator"`
}

func (c ResolveDirectCommand) Validate() error {
	return validate.Struct(c)
}

type CreateGroupCommand struct {
	Title   *string
	Members []ParticipantID `validate:"required,min=1,dive,required"`
}

func (c CreateGroupCommand) Validate() error {
	return validate.Struct(c)
}
