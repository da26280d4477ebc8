package http

import (
	"errors"

	"speedial/internal/pkg/errs"
)

const idAttempts = 5

// withFreshID calls create with a newly drawn id until the store accepts it.
// The last collision is returned once the attempts run out.
func withFreshID(draw func() string, create func(id string) error) (string, error) {
	var err error
	for range idAttempts {
		id := draw()
		if err = create(id); !errors.Is(err, errs.ErrObjectExists) {
			return id, err
		}
	}
	return "", err
}
