package cache

import (
	"testing"

	"github.com/atheik/imagenet-browser/memory"
	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/atheik/imagenet-browser/taxonomy/storetest"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic store tests against the caching wrapper over
// a memory store.  The cache must be semantically invisible.
type Suite struct {
	storetest.Suite
}

// SetupSuite does global setup for the test suite.
func (s *Suite) SetupSuite() {
	s.Factory = func() (taxonomy.Store, error) {
		return New(memory.New()), nil
	}
}

// TestStore runs the generic store tests.
func TestStore(t *testing.T) {
	suite.Run(t, &Suite{})
}
