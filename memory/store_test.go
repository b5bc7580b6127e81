package memory

import (
	"testing"

	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/atheik/imagenet-browser/taxonomy/storetest"
	"github.com/stretchr/testify/suite"
)

// Suite is the per-backend generic test suite.
type Suite struct {
	storetest.Suite
}

// SetupSuite does global setup for the test suite.
func (s *Suite) SetupSuite() {
	s.Factory = func() (taxonomy.Store, error) {
		return New(), nil
	}
}

// TestStore runs the generic store tests against the memory backend.
func TestStore(t *testing.T) {
	suite.Run(t, &Suite{})
}
