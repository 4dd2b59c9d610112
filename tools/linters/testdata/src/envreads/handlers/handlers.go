package handlers

import "os"

func CompanyEmail() string {
	return os.Getenv("COMPANY_EMAIL") // want `os.Getenv outside internal/platform/config`
}

func SMTPHost() (string, bool) {
	return os.LookupEnv("SMTP_HOST") // want `os.LookupEnv outside internal/platform/config`
}
