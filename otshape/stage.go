package otshape

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/otshaping/ot"
)

// StageFeatures is the ordered set of features touched during a shaping stage.
// Tags are kept in first-seen order; adding a tag twice has no effect.
type StageFeatures struct {
	set *linkedhashset.Set
}

// NewStageFeatures creates an empty feature list.
func NewStageFeatures() *StageFeatures {
	return &StageFeatures{set: linkedhashset.New()}
}

// Add appends tag unless it is already present.
func (sf *StageFeatures) Add(tag ot.Tag) {
	sf.set.Add(tag)
}

// Contains reports whether tag has been added.
func (sf *StageFeatures) Contains(tag ot.Tag) bool {
	return sf.set.Contains(tag)
}

// Len returns the number of distinct tags.
func (sf *StageFeatures) Len() int {
	return sf.set.Size()
}

// Tags returns the tags in first-seen order.
func (sf *StageFeatures) Tags() []ot.Tag {
	values := sf.set.Values()
	tags := make([]ot.Tag, len(values))
	for i, v := range values {
		tags[i] = v.(ot.Tag)
	}
	return tags
}

// Clear removes all tags.
func (sf *StageFeatures) Clear() {
	sf.set.Clear()
}
