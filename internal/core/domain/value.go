package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	emailRe          = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{1,}$`)
	phoneRe          = regexp.MustCompile(`^010\d{8}$`)
	businessNumberRe = regexp.MustCompile(`^\d{10}$`)
)

// Email is a syntactically valid e-mail address.
type Email string

func NewEmail(v string) (Email, error) {
	v = strings.TrimSpace(v)
	if !emailRe.MatchString(v) {
		return "", ValidationError("email", fmt.Sprintf("invalid email format: %q", v))
	}
	return Email(v), nil
}

// PhoneNumber is a mobile number normalised to 010-XXXX-XXXX.
type PhoneNumber string

func NewPhoneNumber(v string) (PhoneNumber, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(v), "-", "")
	if !phoneRe.MatchString(clean) {
		return "", ValidationError("phone_number", fmt.Sprintf("invalid phone number format: %q", v))
	}
	return PhoneNumber(clean[:3] + "-" + clean[3:7] + "-" + clean[7:]), nil
}

// BusinessNumber is a 10-digit business registration number without hyphens.
type BusinessNumber string

func NewBusinessNumber(v string) (BusinessNumber, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(v), "-", "")
	if !businessNumberRe.MatchString(clean) {
		return "", ValidationError("business_number", fmt.Sprintf("invalid business number: %q", v))
	}
	return BusinessNumber(clean), nil
}

// ChannelURL is the absolute http(s) address of an influencer's channel.
type ChannelURL string

func NewChannelURL(v string) (ChannelURL, error) {
	v, err := httpURL("channel_url", v)
	return ChannelURL(v), err
}

// ImageURL is the absolute http(s) address of a campaign image.
type ImageURL string

func NewImageURL(v string) (ImageURL, error) {
	v, err := httpURL("image_url", v)
	return ImageURL(v), err
}

// httpURL accepts only absolute http and https URLs with a host.
func httpURL(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ValidationError(field, fmt.Sprintf("invalid %s: %q", strings.ReplaceAll(field, "_", " "), v))
	}
	return v, nil
}
