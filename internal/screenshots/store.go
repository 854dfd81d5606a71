package screenshots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/coachshot/internal/imaging"
)

var ErrUnknownRef = errors.New("unknown screenshot reference")

// Store keeps the downscaled source screenshot of a workout and hands back a
// reference that goes into the workout's sourceScreenshots list.
type Store interface {
	Put(ctx context.Context, userID string, img *imaging.Image) (string, error)
	Delete(ctx context.Context, ref string) error
	URL(ctx context.Context, ref string) (string, error)
}

// InlineStore keeps the image inside the workout row as a data URL.
type InlineStore struct{}

func NewInlineStore() *InlineStore {
	return &InlineStore{}
}

func (s *InlineStore) Put(_ context.Context, _ string, img *imaging.Image) (string, error) {
	if img == nil || len(img.Data) == 0 {
		return "", imaging.ErrUnsupportedImage
	}
	return img.DataURL(), nil
}

// Delete is a no-op, the data goes away with the row.
func (s *InlineStore) Delete(_ context.Context, ref string) error {
	if !strings.HasPrefix(ref, "data:") {
		return ErrUnknownRef
	}
	return nil
}

// URL hands the data URL back once it decodes, imported workouts may carry broken ones.
func (s *InlineStore) URL(_ context.Context, ref string) (string, error) {
	if !strings.HasPrefix(ref, "data:") {
		return "", ErrUnknownRef
	}
	if _, err := imaging.DecodeDataURL(ref); err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownRef, err)
	}
	return ref, nil
}
