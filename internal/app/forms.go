package app

import (
	"github.com/riordanpawley/visioncraft/internal/services/validator"
	"github.com/riordanpawley/visioncraft/internal/types"
	"github.com/riordanpawley/visioncraft/internal/ui/form"
)

// Checkbox names
const (
	fieldRemember   = "remember"
	fieldAgreeTerms = "agreeTerms"
)

// Button names
const (
	buttonForgot   = "forgot"
	buttonSSO      = "sso"
	buttonSwitch   = "switch"
	buttonGoogle   = "google"
	buttonApple    = "apple"
	buttonLinkedIn = "linkedin"
	buttonGitHub   = "github"
)

// User-facing messages
const (
	msgSignInSuccess  = "Sign in feature Coming Soon!"
	msgSignUpSuccess  = "Signup feature Coming Soon!"
	msgSignInFailed   = "Sign in failed. Please try again."
	msgSignUpFailed   = "Signup failed. Please try again."
	msgTerms          = "Please agree to the Terms of Service and Privacy Policy"
	msgFormCleared    = "Form cleared"
	msgSwitchedFormat = "Switched to %s mode"
	msgSocialFormat   = "%s %s is coming soon!"
	msgForgotPassword = "Password reset functionality is coming soon!"
	msgSSO            = "Single Sign-On (SSO) is coming soon!"
)

// providers maps social buttons to the provider name used in notifications
var providers = map[string]string{
	buttonGoogle:   "Google",
	buttonApple:    "Apple",
	buttonLinkedIn: "LinkedIn",
	buttonGitHub:   "GitHub",
}

func socialButtons() []form.ButtonSpec {
	return []form.ButtonSpec{
		{Name: buttonGoogle, Label: providers[buttonGoogle], Group: form.GroupSocial},
		{Name: buttonApple, Label: providers[buttonApple], Group: form.GroupSocial},
		{Name: buttonLinkedIn, Label: providers[buttonLinkedIn], Group: form.GroupSocial},
		{Name: buttonGitHub, Label: providers[buttonGitHub], Group: form.GroupSocial},
	}
}

// loginSpec declares the sign in container
func loginSpec(appName string) form.Spec {
	return form.Spec{
		Mode:        types.ModeLogin,
		Title:       "Welcome back",
		Subtitle:    "Sign in to your " + appName + " account",
		SubmitLabel: "Sign In",
		BusyLabel:   "Signing in...",
		Inputs: []form.InputSpec{
			{Name: validator.FieldEmail, Label: "Email", Placeholder: "you@example.com"},
			{Name: validator.FieldPassword, Label: "Password", Placeholder: "Your password", Password: true},
		},
		Checkboxes: []form.CheckboxSpec{
			{Name: fieldRemember, Label: "Remember me"},
		},
		Buttons: append(
			append([]form.ButtonSpec{{Name: buttonForgot, Label: "Forgot password?", Group: form.GroupInline}}, socialButtons()...),
			form.ButtonSpec{Name: buttonSSO, Label: "Sign in with SSO", Group: form.GroupFooter},
			form.ButtonSpec{Name: buttonSwitch, Label: "Create an account", Group: form.GroupFooter},
		),
	}
}

// signupSpec declares the sign up container
func signupSpec(appName string) form.Spec {
	return form.Spec{
		Mode:        types.ModeSignup,
		Title:       "Create account",
		Subtitle:    "Join " + appName + " today",
		SubmitLabel: "Sign Up",
		BusyLabel:   "Creating account...",
		Inputs: []form.InputSpec{
			{Name: validator.FieldFirstName, Label: "First name", Placeholder: "Jane"},
			{Name: validator.FieldLastName, Label: "Last name", Placeholder: "Doe"},
			{Name: validator.FieldEmail, Label: "Email", Placeholder: "you@example.com"},
			{Name: validator.FieldPassword, Label: "Password", Placeholder: "At least 6 characters", Password: true},
		},
		Checkboxes: []form.CheckboxSpec{
			{Name: fieldAgreeTerms, Label: "I agree to the Terms and Privacy Policy"},
		},
		Buttons: append(
			socialButtons(),
			form.ButtonSpec{Name: buttonSwitch, Label: "Already have an account? Sign in", Group: form.GroupFooter},
		),
	}
}
