package web

import (
	"context"
	"io"

	"github.com/UnknownOlympus/ems/internal/views"
	"github.com/a-h/templ"
)

const bootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"

// htmlWriter keeps the first write error so components can be written without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) component(c templ.Component) {
	if hw.err != nil {
		return
	}
	hw.err = c.Render(hw.ctx, hw.w)
}

func render(fn func(hw *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{ctx: ctx, w: w}
		fn(hw)
		return hw.err
	})
}

// Page wraps content with the persistent header and footer.
func Page(title string, content templ.Component) templ.Component {
	return render(func(hw *htmlWriter) {
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw(`<title>`)
		hw.text(title)
		hw.raw(`</title><link rel="stylesheet" href="` + bootstrapCSS + `"></head><body>`)
		hw.component(Header())
		hw.raw(`<main>`)
		hw.component(content)
		hw.raw(`</main>`)
		hw.component(Footer())
		hw.raw(`</body></html>`)
	})
}

func Header() templ.Component {
	return render(func(hw *htmlWriter) {
		hw.raw(`<header><nav class="navbar navbar-expand-md navbar-dark bg-dark">`)
		hw.raw(`<a class="navbar-brand ms-3" href="` + views.PathList + `">Employee Management System</a>`)
		hw.raw(`</nav></header>`)
	})
}

func Footer() templ.Component {
	return render(func(hw *htmlWriter) {
		hw.raw(`<footer class="footer text-center mt-5"><span>All rights reserved by EMS</span></footer>`)
	})
}

// EmployeeTable renders the list screen.
func EmployeeTable(rows []views.Row) templ.Component {
	return render(func(hw *htmlWriter) {
		hw.raw(`<div class="container mt-5"><h2 class="text-center">List of Employee</h2>`)
		hw.raw(`<a id="add-employee" class="btn btn-primary mb-2" href="` + views.PathAdd + `">Add Employee</a>`)
		hw.raw(`<table class="table table-striped table-bordered"><thead><tr>`)
		hw.raw(`<th>Employee ID</th><th>Employee First Name</th><th>Employee Last Name</th>`)
		hw.raw(`<th>Employee Email</th><th>Actions</th></tr></thead><tbody>`)
		for _, row := range rows {
			hw.raw(`<tr data-id="`)
			hw.text(string(row.Employee.ID))
			hw.raw(`"><td>`)
			hw.text(string(row.Employee.ID))
			hw.raw(`</td><td>`)
			hw.text(row.Employee.FirstName)
			hw.raw(`</td><td>`)
			hw.text(row.Employee.LastName)
			hw.raw(`</td><td>`)
			hw.text(row.Employee.Email)
			hw.raw(`</td><td>`)
			actionLink(hw, "btn btn-info", row.ViewPath, "View")
			actionLink(hw, "btn btn-warning mx-2", row.UpdatePath, "Update")
			actionLink(hw, "btn btn-danger", row.DeletePath, "Delete")
			hw.raw(`</td></tr>`)
		}
		hw.raw(`</tbody></table></div>`)
	})
}

func actionLink(hw *htmlWriter, class, href, label string) {
	hw.raw(`<a class="` + class + `" href="`)
	hw.text(href)
	hw.raw(`">` + label + `</a>`)
}

// EmployeeForm renders the add/update screen posting back to action.
func EmployeeForm(view *views.FormView, action string) templ.Component {
	return render(func(hw *htmlWriter) {
		hw.raw(`<div class="container mt-5"><div class="row"><div class="card col-md-6 offset-md-3">`)
		hw.raw(`<h2 class="text-center">`)
		hw.text(view.Title())
		hw.raw(`</h2><form method="post" action="`)
		hw.text(action)
		hw.raw(`">`)
		formField(hw, "firstName", "First Name", "text", view.Fields.FirstName, view.Errors.FirstName)
		formField(hw, "lastName", "Last Name", "text", view.Fields.LastName, view.Errors.LastName)
		formField(hw, "email", "Email", "email", view.Fields.Email, view.Errors.Email)
		hw.raw(`<button type="submit" class="btn btn-primary">Submit</button></form></div></div></div>`)
	})
}

func formField(hw *htmlWriter, name, label, inputType, value, message string) {
	class := "form-control"
	if message != "" {
		class += " is-invalid"
	}

	hw.raw(`<div class="mb-3"><label for="` + name + `" class="form-label">` + label + `</label>`)
	hw.raw(`<input type="` + inputType + `" class="` + class + `" id="` + name + `" name="` + name + `" value="`)
	hw.text(value)
	hw.raw(`">`)
	if message != "" {
		hw.raw(`<div class="invalid-feedback" data-field="` + name + `">`)
		hw.text(message)
		hw.raw(`</div>`)
	}
	hw.raw(`</div>`)
}

// Deleting is the transient frame sent along with the redirect of the delete screen.
func Deleting() templ.Component {
	return render(func(hw *htmlWriter) {
		hw.raw(`<div>`)
		hw.text(views.DeletingText)
		hw.raw(`</div>`)
	})
}

// Empty renders nothing; the shell shows it for unknown paths.
func Empty() templ.Component {
	return render(func(*htmlWriter) {})
}
