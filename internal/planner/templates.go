package planner

import (
	"sort"
	"strings"
)

// TaskTemplate pre-fills the task form for a recurring kind of work.
type TaskTemplate struct {
	Name        string
	TitlePrefix string
	Tags        string
}

var taskTemplates = map[string]TaskTemplate{
	"assignment": {Name: "assignment", TitlePrefix: "Assignment: ", Tags: "Assignment"},
	"exam":       {Name: "exam", TitlePrefix: "Exam: ", Tags: "Exam"},
	"lab":        {Name: "lab", TitlePrefix: "Lab: ", Tags: "Lab"},
}

// LookupTemplate finds a template by name, ignoring case.
func LookupTemplate(name string) (TaskTemplate, bool) {
	tpl, ok := taskTemplates[strings.ToLower(strings.TrimSpace(name))]
	return tpl, ok
}

// TemplateNames lists the template names in sorted order.
func TemplateNames() []string {
	names := make([]string, 0, len(taskTemplates))
	for name := range taskTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Title prefixes rest with the template's title prefix.
func (t TaskTemplate) Title(rest string) string {
	return t.TitlePrefix + rest
}
