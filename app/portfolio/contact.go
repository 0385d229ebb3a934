package portfolio

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/tahmidspace/portfolio/core/binder"
	"github.com/tahmidspace/portfolio/core/email"
	"github.com/tahmidspace/portfolio/core/handler"
	"github.com/tahmidspace/portfolio/core/logger"
	"github.com/tahmidspace/portfolio/core/response"
	"github.com/tahmidspace/portfolio/core/validator"
	"github.com/tahmidspace/portfolio/middleware"
)

// contactRequest is the body of POST /api/contact.
type contactRequest struct {
	Name    string `json:"name" validate:"required;max:200"`
	Email   string `json:"email" validate:"required;email"`
	Message string `json:"message" validate:"required;max:5000"`
}

func (c *contactRequest) trim() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Message = strings.TrimSpace(c.Message)
}

// bindContact decodes and validates the request body, mapping failures to
// 413, 415, 400 and 422 responses.
func bindContact(r *http.Request) (contactRequest, error) {
	var in contactRequest
	if err := binder.JSON()(r, &in); err != nil {
		switch {
		case errors.Is(err, binder.ErrBodyTooLarge):
			return in, response.ErrRequestEntityTooLarge
		case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
			return in, response.ErrUnsupportedMediaType
		default:
			return in, response.ErrBadRequest.WithMessage("Request body must be a JSON object")
		}
	}

	in.trim()
	if err := validator.ValidateStruct(&in); err != nil {
		if errs := validator.ExtractValidationErrors(err); errs != nil {
			return in, response.ErrUnprocessableEntity.
				WithMessage(ErrInvalidContact.Error()).
				WithDetails(errs.Fields())
		}
		return in, err
	}

	return in, nil
}

// contact accepts a contact form submission and forwards it by email.
func (a *App) contact(ctx *Context) handler.Response {
	in, err := bindContact(ctx.Request())
	if err != nil {
		return response.Error(err)
	}

	params := email.SendEmailParams{
		SendTo:   a.config.ContactRecipient,
		ReplyTo:  in.Email,
		Subject:  "Portfolio contact from " + in.Name,
		BodyText: fmt.Sprintf("From: %s <%s>\n\n%s\n", in.Name, in.Email, in.Message),
		Tag:      "contact",
	}

	if err := a.sender.SendEmail(ctx, params); err != nil {
		a.logger.ErrorContext(ctx, "contact delivery failed",
			logger.Component("contact"),
			logger.VisitorID(middleware.GetVisitorID(ctx)),
			logger.Error(err),
		)
		return response.Error(response.ErrBadGateway.WithError(errors.Join(ErrContactDelivery, err)))
	}

	a.logger.InfoContext(ctx, "contact accepted",
		logger.Component("contact"),
		logger.VisitorID(middleware.GetVisitorID(ctx)),
		slog.Int("message_length", utf8.RuneCountInString(in.Message)),
	)

	return response.JSONWithStatus(map[string]string{"status": "accepted"}, http.StatusAccepted)
}
