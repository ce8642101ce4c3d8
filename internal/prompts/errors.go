package prompts

import "errors"

// ErrInvalidStage indicates an unrecognized generative stage value.
var ErrInvalidStage = errors.New("invalid prompt stage")
