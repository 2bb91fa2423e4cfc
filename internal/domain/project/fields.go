package project

import (
	"strings"
)

// field maps one request attribute to its column. This table is the only
// source of column names in dynamically built statements.
type field struct {
	column string
	// emptyAsNull stores "" as NULL
	emptyAsNull bool
	create      func(*CreateProjectRequest) string
	update      func(*UpdateProjectRequest) *string
}

var projectFields = []field{
	{
		column: "name",
		create: func(r *CreateProjectRequest) string { return r.Name },
		update: func(r *UpdateProjectRequest) *string { return r.Name },
	},
	{
		column: "module_code",
		create: func(r *CreateProjectRequest) string { return r.ModuleCode },
		update: func(r *UpdateProjectRequest) *string { return r.ModuleCode },
	},
	{
		column: "module_name",
		create: func(r *CreateProjectRequest) string { return r.ModuleName },
		update: func(r *UpdateProjectRequest) *string { return r.ModuleName },
	},
	{
		column: "description",
		create: func(r *CreateProjectRequest) string { return r.Description },
		update: func(r *UpdateProjectRequest) *string { return r.Description },
	},
	{
		column:      "img",
		emptyAsNull: true,
		create:      func(r *CreateProjectRequest) string { return r.Img },
		update:      func(r *UpdateProjectRequest) *string { return r.Img },
	},
	{
		column:      "category",
		emptyAsNull: true,
		create:      func(r *CreateProjectRequest) string { return r.Category },
		update:      func(r *UpdateProjectRequest) *string { return r.Category },
	},
	{
		column:      "github_link",
		emptyAsNull: true,
		create:      func(r *CreateProjectRequest) string { return r.GithubLink },
		update:      func(r *UpdateProjectRequest) *string { return r.GithubLink },
	},
	{
		column:      "demo_link",
		emptyAsNull: true,
		create:      func(r *CreateProjectRequest) string { return r.DemoLink },
		update:      func(r *UpdateProjectRequest) *string { return r.DemoLink },
	},
}

func (f field) value(s string) interface{} {
	if f.emptyAsNull && s == "" {
		return nil
	}
	return s
}

// Columns is an ordered set of column assignments.
// It can only be built from projectFields.
type Columns struct {
	names  []string
	values []interface{}
}

// Empty reports whether no column is assigned
func (c Columns) Empty() bool {
	return len(c.names) == 0
}

// Names returns the assigned column names in whitelist order
func (c Columns) Names() []string {
	return append([]string(nil), c.names...)
}

// Values returns the bound parameters, aligned with Names
func (c Columns) Values() []interface{} {
	return append([]interface{}(nil), c.values...)
}

func (c *Columns) add(f field, v string) {
	c.names = append(c.names, f.column)
	c.values = append(c.values, f.value(v))
}

// insertColumns assigns every column; optional ones default to "" or NULL.
func insertColumns(req *CreateProjectRequest) Columns {
	var c Columns
	for _, f := range projectFields {
		c.add(f, f.create(req))
	}
	return c
}

// updateColumns assigns only the supplied attributes
func updateColumns(req *UpdateProjectRequest) Columns {
	var c Columns
	for _, f := range projectFields {
		if v := f.update(req); v != nil {
			c.add(f, *v)
		}
	}
	return c
}

// insertSQL renders INSERT ... VALUES (?, ...) RETURNING id
func (c Columns) insertSQL(table string) string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(c.names)), ", ")
	return "INSERT INTO " + table + " (" + strings.Join(c.names, ", ") + ") VALUES (" + placeholders + ") RETURNING id"
}

// updateSQL renders UPDATE ... SET col = ?, ... WHERE id = ?
func (c Columns) updateSQL(table string) string {
	sets := make([]string, len(c.names))
	for i, name := range c.names {
		sets[i] = name + " = ?"
	}
	return "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?"
}
