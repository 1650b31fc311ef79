package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func authCard(title string, body ...g.Node) g.Node {
	return h.Div(h.Class("mx-auto mt-16 max-w-md rounded-lg bg-white p-8 shadow"),
		h.H1(h.Class("mb-6 text-center text-2xl font-bold"), g.Text(title)),
		g.Group(body),
	)
}

// LoginPage renders the sign-in form, keeping the entered email.
func LoginPage(p PageProps, email string, errs FieldErrors) g.Node {
	p.Title = "Sign in"
	return Page(p, authCard("Sign in",
		h.Form(h.Method("post"), h.Action("/login"),
			textInput("Email", "email", "email", email, errs, h.Required()),
			textInput("Password", "password", "password", "", errs, h.Required()),
			submit("Sign in"),
		),
		h.P(h.Class("mt-4 text-center text-sm"),
			g.Text("No account? "), h.A(h.Href("/signup"), h.Class("text-indigo-600"), g.Text("Sign up")),
		),
	))
}

func SignupPage(p PageProps, email, fullName string, errs FieldErrors) g.Node {
	p.Title = "Sign up"
	return Page(p, authCard("Create an account",
		h.Form(h.Method("post"), h.Action("/signup"),
			textInput("Full name", "full_name", "text", fullName, errs, h.Required()),
			textInput("Email", "email", "email", email, errs, h.Required()),
			textInput("Password", "password", "password", "", errs, h.Required()),
			textInput("Confirm password", "confirm_password", "password", "", errs, h.Required()),
			submit("Sign up"),
		),
		h.P(h.Class("mt-4 text-center text-sm"),
			g.Text("Already registered? "), h.A(h.Href("/login"), h.Class("text-indigo-600"), g.Text("Sign in")),
		),
	))
}
