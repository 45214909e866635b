//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gilthub/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

const (
	defaultCloneURL  = "git@example.com:org/widget.git"
	defaultBucketURL = "my-bucket/archives"
)

// InvocationBuilder helps create test invocations with a fluent interface.
type InvocationBuilder struct {
	*testkit.BaseBuilder
	mode        entities.Mode
	profile     string
	source      string
	destination string
}

// NewInvocationBuilder creates a new invocation builder defaulting to an archive request.
func NewInvocationBuilder() *InvocationBuilder {
	return &InvocationBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		mode:        entities.ModeArchive,
		source:      defaultCloneURL,
		destination: defaultBucketURL,
	}
}

// WithMode sets the mode.
func (b *InvocationBuilder) WithMode(mode entities.Mode) *InvocationBuilder {
	b.mode = mode
	return b
}

// WithProfile sets the profile flag value.
func (b *InvocationBuilder) WithProfile(profile string) *InvocationBuilder {
	b.profile = profile
	return b
}

// WithSource sets the first positional argument.
func (b *InvocationBuilder) WithSource(source string) *InvocationBuilder {
	b.source = source
	return b
}

// WithDestination sets the second positional argument.
func (b *InvocationBuilder) WithDestination(destination string) *InvocationBuilder {
	b.destination = destination
	return b
}

// Build creates the invocation (satisfies testkit.Builder interface).
func (b *InvocationBuilder) Build() interface{} {
	return b.BuildInvocation()
}

// BuildInvocation creates the invocation with a concrete return type.
func (b *InvocationBuilder) BuildInvocation() entities.Invocation {
	return entities.Invocation{
		Mode:        b.mode,
		Profile:     b.profile,
		Source:      b.source,
		Destination: b.destination,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *InvocationBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.mode = entities.ModeArchive
	b.profile = ""
	b.source = defaultCloneURL
	b.destination = defaultBucketURL
	return b
}

// Clone creates a deep copy of the InvocationBuilder.
func (b *InvocationBuilder) Clone() testkit.Builder {
	return &InvocationBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		mode:        b.mode,
		profile:     b.profile,
		source:      b.source,
		destination: b.destination,
	}
}
