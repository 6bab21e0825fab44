package i18n

// English and Tamil string tables. Lookup falls back to English, then to the
// key itself, so a missing entry degrades to something readable instead of an
// empty label.

const FallbackLang = "en"

var resources = map[string]map[string]string{
	"en": {
		"login":              "Login",
		"register":           "Register",
		"username":           "Username",
		"password":           "Password",
		"confirmPassword":    "Confirm Password",
		"submit":             "Submit",
		"selectLanguage":     "Select Language",
		"welcome":            "Welcome to Aarogya AI",
		"forgotPassword":     "Forgot Password?",
		"createAccount":      "Create Account",
		"alreadyHaveAccount": "Already have an account?",
		"backToLogin":        "Back to Login",
		"continue":           "Continue",
		"resetPassword":      "Reset Password",

		"fullName":           "Full Name",
		"emailAddress":       "Email Address",
		"phoneNumber":        "Phone Number",
		"newPassword":        "New Password",
		"confirmNewPassword": "Confirm New Password",

		"allFieldsRequired":  "All fields are required",
		"nameRequired":       "Name is required",
		"emailRequired":      "Email is required",
		"emailInvalid":       "Please enter a valid email",
		"phoneRequired":      "Phone number is required",
		"phoneInvalid":       "Please enter a valid 10-digit phone number",
		"passwordRequired":   "Password is required",
		"passwordLength":     "Password must be at least 6 characters",
		"passwordsDontMatch": "Passwords do not match",

		"registrationSuccess":  "Registration successful! Redirecting to login...",
		"registrationFailed":   "Registration failed. Please try again.",
		"passwordResetSuccess": "Password reset successful! Redirecting to login...",
		"passwordResetFailed":  "Failed to reset password. Please try again.",
		"emailNotFound":        "No account found with this email address",
		"enterNewPassword":     "Please enter your new password",
		"loginError":           "Invalid username or password",

		"dashboard":      "Dashboard",
		"medicalHistory": "Medical History",
		"settings":       "Settings",
		"logout":         "Logout",
		"welcomeBack":    "Welcome back",
		"user":           "User",
	},
	"ta": {
		"login":              "உள்நுழைய",
		"register":           "பதிவு செய்க",
		"username":           "பயனர்பெயர்",
		"password":           "கடவுச்சொல்",
		"confirmPassword":    "கடவுச்சொல்லை உறுதிப்படுத்தவும்",
		"submit":             "சமர்ப்பிக்கவும்",
		"selectLanguage":     "மொழியைத் தேர்ந்தெடுக்கவும்",
		"welcome":            "ஆரோக்கிய AI க்கு வரவேற்கிறோம்",
		"forgotPassword":     "கடவுச்சொல் மறந்துவிட்டதா?",
		"createAccount":      "கணக்கை உருவாக்கு",
		"alreadyHaveAccount": "ஏற்கனவே கணக்கு உள்ளதா?",
		"backToLogin":        "உள்நுழைவுக்கு திரும்பு",
		"continue":           "தொடரவும்",
		"resetPassword":      "கடவுச்சொல்லை மீட்டமைக்கவும்",

		"fullName":           "முழு பெயர்",
		"emailAddress":       "மின்னஞ்சல் முகவரி",
		"phoneNumber":        "தொலைபேசி எண்",
		"newPassword":        "புதிய கடவுச்சொல்",
		"confirmNewPassword": "புதிய கடவுச்சொல்லை உறுதிப்படுத்தவும்",

		"nameRequired":       "பெயர் தேவை",
		"emailRequired":      "மின்னஞ்சல் தேவை",
		"emailInvalid":       "சரியான மின்னஞ்சலை உள்ளிடவும்",
		"phoneRequired":      "தொலைபேசி எண் தேவை",
		"phoneInvalid":       "சரியான 10 இலக்க தொலைபேசி எண்ணை உள்ளிடவும்",
		"passwordRequired":   "கடவுச்சொல் தேவை",
		"passwordLength":     "கடவுச்சொல் குறைந்தது 6 எழுத்துகள் இருக்க வேண்டும்",
		"passwordsDontMatch": "கடவுச்சொற்கள் பொருந்தவில்லை",

		"registrationSuccess":  "பதிவு வெற்றிகரமாக முடிந்தது! உள்நுழைவு பக்கத்திற்கு திருப்பி விடப்படுகிறது...",
		"registrationFailed":   "பதிவு தோல்வியடைந்தது. மீண்டும் முயற்சிக்கவும்.",
		"passwordResetSuccess": "கடவுச்சொல் மீட்டமைப்பு வெற்றிகரமாக முடிந்தது! உள்நுழைவு பக்கத்திற்கு திருப்பி விடப்படுகிறது...",
		"passwordResetFailed":  "கடவுச்சொல்லை மீட்டமைக்க முடியவில்லை. மீண்டும் முயற்சிக்கவும்.",
		"emailNotFound":        "இந்த மின்னஞ்சல் முகவரியுடன் கணக்கு எதுவும் கிடைக்கவில்லை",
		"enterNewPassword":     "உங்கள் புதிய கடவுச்சொல்லை உள்ளிடவும்",
		"loginError":           "தவறான பயனர்பெயர் அல்லது கடவுச்சொல்",

		"dashboard":      "டாஷ்போர்டு",
		"medicalHistory": "மருத்துவ வரலாறு",
		"settings":       "அமைப்புகள்",
		"logout":         "வெளியேறு",
		"welcomeBack":    "மீண்டும் வருக",
		"user":           "பயனர்",
	},
}

// Langs lists the supported locales, in selector order.
var Langs = []string{"en", "ta"}

func T(lang, key string) string {
	if m, ok := resources[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := resources[FallbackLang][key]; ok {
		return v
	}
	return key
}
