package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	maxBodyBytes = 1 << 20
	dateLayout   = "2006-01-02"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requestError is a malformed request rejected before reaching a use case.
type requestError struct {
	status int
	code   string
	msg    string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(code, format string, args ...any) error {
	return &requestError{status: http.StatusBadRequest, code: code, msg: fmt.Sprintf(format, args...)}
}

// decode reads a JSON body into dst and validates it.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	return decodeBody(w, r, dst, false)
}

// decodeOptional is decode for endpoints whose body may be omitted.
func decodeOptional(w http.ResponseWriter, r *http.Request, dst any) error {
	return decodeBody(w, r, dst, true)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if !errors.Is(err, io.EOF) {
			return badRequest("invalid_json", "invalid JSON: %v", err)
		}
		if !allowEmpty {
			return badRequest("invalid_json", "request body is empty")
		}
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return badRequest("invalid_request", "invalid fields: %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

func parseDate(field, v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, badRequest("invalid_"+field, "%s must be a date in YYYY-MM-DD form", field)
	}
	return t, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("invalid_"+name, "%s must be a positive integer", name)
	}
	return id, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, badRequest("invalid_"+name, "%s must be an integer", name)
	}
	return n, nil
}

type createCampaignRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	Quota       int     `json:"quota" validate:"gte=1"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Benefits    string  `json:"benefits"`
	Conditions  string  `json:"conditions"`
	ImageURL    *string `json:"image_url" validate:"omitempty,http_url"`
}

type selectionRequest struct {
	ApplicationIDs *[]int64 `json:"application_ids" validate:"required"`
}

type applyRequest struct {
	Reason *string `json:"application_reason" validate:"omitempty,max=1000"`
}

type advertiserRequest struct {
	Name               string `json:"name" validate:"required"`
	BirthDate          string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	PhoneNumber        string `json:"phone_number" validate:"required"`
	BusinessName       string `json:"business_name" validate:"required"`
	Address            string `json:"address" validate:"required"`
	BusinessPhone      string `json:"business_phone" validate:"required"`
	BusinessNumber     string `json:"business_number" validate:"required"`
	RepresentativeName string `json:"representative_name" validate:"required"`
}

type influencerRequest struct {
	Name          string `json:"name" validate:"required"`
	BirthDate     string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	PhoneNumber   string `json:"phone_number" validate:"required"`
	ChannelName   string `json:"channel_name" validate:"required"`
	ChannelURL    string `json:"channel_url" validate:"required,url"`
	FollowerCount int    `json:"follower_count" validate:"gte=0"`
}
