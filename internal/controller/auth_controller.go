package controller

import (
	"net/http"

	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/view"
)

func (c *Controller) LoginPage(w http.ResponseWriter, r *http.Request) {
	c.render(w, http.StatusOK, view.LoginPage(c.props(w, r), "", nil))
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	f := form.Login{Email: r.FormValue("email"), Password: r.FormValue("password")}
	user, err := c.Auth.SignIn(r.Context(), f)
	if err != nil {
		p := c.props(w, r)
		if errs, ok := fieldErrors(err); ok {
			c.render(w, http.StatusUnprocessableEntity, view.LoginPage(p, f.Email, errs))
			return
		}
		c.Logger.Warn("Failed login attempt", "email", f.Email, "error", err)
		p.Flashes.Error = append(p.Flashes.Error, "Invalid email or password.")
		c.render(w, http.StatusUnauthorized, view.LoginPage(p, f.Email, nil))
		return
	}
	c.Logger.Info("User signed in", "user_id", user.ID)
	c.Sessions.FlashSuccess(w, r, "Welcome back, "+user.DisplayName()+"!")
	c.redirect(w, r, "/")
}

func (c *Controller) SignupPage(w http.ResponseWriter, r *http.Request) {
	c.render(w, http.StatusOK, view.SignupPage(c.props(w, r), "", "", nil))
}

func (c *Controller) Signup(w http.ResponseWriter, r *http.Request) {
	f := form.Signup{
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		FullName:        r.FormValue("full_name"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
	user, err := c.Auth.SignUp(r.Context(), f)
	if err != nil {
		p := c.props(w, r)
		if errs, ok := fieldErrors(err); ok {
			c.render(w, http.StatusUnprocessableEntity, view.SignupPage(p, f.Email, f.FullName, errs))
			return
		}
		c.Logger.Warn("Signup failed", "email", f.Email, "error", err)
		p.Flashes.Error = append(p.Flashes.Error, userMessage(err, "Could not create your account."))
		c.render(w, http.StatusBadRequest, view.SignupPage(p, f.Email, f.FullName, nil))
		return
	}
	c.Logger.Info("User signed up", "user_id", user.ID)
	c.Sessions.FlashSuccess(w, r, "Account created successfully!")
	c.redirect(w, r, "/")
}

func (c *Controller) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.Auth.SignOut(r.Context()); err != nil {
		c.Logger.Debug("Backend sign-out failed", "error", err)
	}
	c.Sessions.FlashSuccess(w, r, "You have been signed out.")
	c.redirect(w, r, "/login")
}
