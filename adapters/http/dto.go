package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	profileUC "github.com/HPainhas/DevConnector/internal/application/usecase/profile"
	"github.com/HPainhas/DevConnector/internal/domain/profile"
	"github.com/HPainhas/DevConnector/pkg/apperror"
)

// Auth DTOs

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Profile DTOs

type upsertProfileRequest struct {
	Company        string            `json:"company"`
	Website        string            `json:"website"`
	Location       string            `json:"location"`
	Status         string            `json:"status" binding:"required"`
	Skills         profile.SkillList `json:"skills" binding:"required,min=1"`
	Bio            string            `json:"bio"`
	GithubUsername string            `json:"githubusername"`
	Youtube        string            `json:"youtube"`
	Twitter        string            `json:"twitter"`
	Instagram      string            `json:"instagram"`
	Linkedin       string            `json:"linkedin"`
	Facebook       string            `json:"facebook"`
}

func (req *upsertProfileRequest) toInput(userID uuid.UUID) profileUC.UpsertProfileInput {
	return profileUC.UpsertProfileInput{
		UserID:         userID,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         req.Skills,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social: profile.Social{
			Youtube:   req.Youtube,
			Twitter:   req.Twitter,
			Instagram: req.Instagram,
			Linkedin:  req.Linkedin,
			Facebook:  req.Facebook,
		},
	}
}

type experienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func (req *experienceRequest) toInput(userID uuid.UUID) (profileUC.AddExperienceInput, error) {
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return profileUC.AddExperienceInput{}, err
	}
	return profileUC.AddExperienceInput{
		UserID:      userID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	}, nil
}

type educationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

func (req *educationRequest) toInput(userID uuid.UUID) (profileUC.AddEducationInput, error) {
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return profileUC.AddEducationInput{}, err
	}
	return profileUC.AddEducationInput{
		UserID:       userID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	}, nil
}

// parseDate accepts RFC3339 or plain YYYY-MM-DD.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func parseDateRange(fromRaw, toRaw string) (time.Time, *time.Time, error) {
	from, err := parseDate(fromRaw)
	if err != nil {
		return time.Time{}, nil, apperror.NewValidation([]apperror.FieldError{
			{Msg: "From date is invalid", Param: "from"},
		})
	}

	var to *time.Time
	if toRaw != "" {
		parsed, err := parseDate(toRaw)
		if err != nil {
			return time.Time{}, nil, apperror.NewValidation([]apperror.FieldError{
				{Msg: "To date is invalid", Param: "to"},
			})
		}
		to = &parsed
	}
	return from, to, nil
}

// requiredFieldMessages maps struct field names from binding failures to the
// client-facing messages.
var requiredFieldMessages = map[string]string{
	"Name":         "Name is required",
	"Email":        "Please include a valid email",
	"Password":     "Please enter a password with 6 or more characters",
	"Status":       "Status is required",
	"Skills":       "Skills is required",
	"Title":        "Title is required",
	"Company":      "Company is required",
	"From":         "From date is required",
	"School":       "School is required",
	"Degree":       "Degree is required",
	"FieldOfStudy": "Field of study is required",
}

// bindingError converts a gin binding failure into the structured 400
// validation error.
func bindingError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewValidation([]apperror.FieldError{
			{Msg: "Invalid request body"},
		})
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := requiredFieldMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		fields = append(fields, apperror.FieldError{
			Msg:   msg,
			Param: strings.ToLower(fe.Field()),
		})
	}
	return apperror.NewValidation(fields)
}
