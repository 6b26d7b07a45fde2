package profiles

import (
	"reflect"
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/snp-robotics/motionprofiles/motionplan"
)

type dictionaryKey struct {
	stage motionplan.StageID
	name  string
}

// Dictionary associates profiles with the pipeline stage and profile name they are meant for. A
// stage and name may hold one profile of each Go type, e.g. a plan profile and a composite profile
// for the optimizer. Populate it once; afterwards it may be read concurrently.
type Dictionary struct {
	profiles map[dictionaryKey][]any
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{profiles: map[dictionaryKey][]any{}}
}

// Add registers profile under stage and name, replacing any profile of the same type there.
func (d *Dictionary) Add(stage motionplan.StageID, name string, profile any) {
	key := dictionaryKey{stage, name}
	entries := d.profiles[key]
	for i, existing := range entries {
		if reflect.TypeOf(existing) == reflect.TypeOf(profile) {
			entries[i] = profile
			return
		}
	}
	d.profiles[key] = append(entries, profile)
}

// Has reports whether any profile is registered under stage and name.
func (d *Dictionary) Has(stage motionplan.StageID, name string) bool {
	return len(d.profiles[dictionaryKey{stage, name}]) > 0
}

// Stages returns the stages with at least one profile, sorted.
func (d *Dictionary) Stages() []motionplan.StageID {
	stages := lo.Uniq(lo.Map(lo.Keys(d.profiles), func(k dictionaryKey, _ int) motionplan.StageID { return k.stage }))
	slices.Sort(stages)
	return stages
}

// Names returns the profile names registered for stage, sorted.
func (d *Dictionary) Names(stage motionplan.StageID) []string {
	names := lo.FilterMap(lo.Keys(d.profiles), func(k dictionaryKey, _ int) (string, bool) {
		return k.name, k.stage == stage
	})
	slices.Sort(names)
	return names
}

// Profiles returns every profile registered under stage and name, in registration order.
func (d *Dictionary) Profiles(stage motionplan.StageID, name string) []any {
	return slices.Clone(d.profiles[dictionaryKey{stage, name}])
}

// Get returns the profile of type T registered under stage and name.
func Get[T any](d *Dictionary, stage motionplan.StageID, name string) (T, error) {
	var zero T
	entries, ok := d.profiles[dictionaryKey{stage, name}]
	if !ok {
		return zero, errors.Errorf("no profiles registered for stage %s under name %q", stage, name)
	}
	for _, entry := range entries {
		if p, ok := entry.(T); ok {
			return p, nil
		}
	}
	return zero, errors.Errorf("stage %s profile %q has no profile of type %T", stage, name, zero)
}

// BuildAll builds every profile and registers it under the default profile name of its stage.
func (b *Builder) BuildAll() *Dictionary {
	d := NewDictionary()
	d.Add(motionplan.SimpleMotionPlannerTask, motionplan.DefaultProfileName, b.SeedProfile())
	d.Add(motionplan.OMPLMotionPlannerTask, motionplan.DefaultProfileName, b.GlobalSearchProfile())
	d.Add(motionplan.DescartesMotionPlannerTask, motionplan.DefaultProfileName, b.GraphSearchProfile())
	d.Add(motionplan.TrajOptMotionPlannerTask, motionplan.DefaultProfileName, b.TrajOptToolZFreePlanProfile())
	d.Add(motionplan.TrajOptMotionPlannerTask, motionplan.DefaultProfileName, b.TrajOptCompositeProfile())

	b.logger.Infow("built planning profiles", "stages", len(d.Stages()), "parallelism", b.parallelism)
	return d
}
