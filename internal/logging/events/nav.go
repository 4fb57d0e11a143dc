package events

import "github.com/stepmenu/stepmenu/internal/logging"

type NavTracer struct{}

type BuildTracer struct{}

var (
	Nav   = NavTracer{}
	Build = BuildTracer{}
)

func (NavTracer) Back(path []int, activated bool) {
	logging.Trace("nav.back", map[string]interface{}{
		"path":      append([]int(nil), path...),
		"activated": activated,
	})
}

func (NavTracer) Forward(path []int, activated bool) {
	logging.Trace("nav.forward", map[string]interface{}{
		"path":      append([]int(nil), path...),
		"activated": activated,
	})
}

func (NavTracer) Next(path []int) {
	logging.Trace("nav.next", map[string]interface{}{"path": append([]int(nil), path...)})
}

func (NavTracer) Previous(path []int) {
	logging.Trace("nav.previous", map[string]interface{}{"path": append([]int(nil), path...)})
}

func (NavTracer) Activate(section, callback string) {
	logging.Trace("nav.activate", map[string]interface{}{
		"section":  section,
		"callback": callback,
	})
}

func (BuildTracer) Group(group string, sections int) {
	logging.Trace("build.group", map[string]interface{}{"group": group, "sections": sections})
}

func (BuildTracer) Dynamic(group, base string, count int) {
	logging.Trace("build.dynamic", map[string]interface{}{
		"group": group,
		"base":  base,
		"count": count,
	})
}

func (BuildTracer) UnknownProperty(group, key string) {
	logging.Trace("build.unknown-property", map[string]interface{}{"group": group, "key": key})
}
