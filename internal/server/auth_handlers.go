package server

import (
	"encoding/json"
	"time"

	"newsroom/internal/middleware"
	"newsroom/internal/models"
	"newsroom/internal/service"
	"newsroom/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// formValue accepts a JSON string or number and keeps its raw text so
// malformed input is reported against the field instead of the body.
type formValue string

func (v *formValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = formValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = formValue(n.String())
	return nil
}

type signupRequest struct {
	Username  string    `json:"username" form:"username"`
	Email     string    `json:"email" form:"email"`
	Password1 string    `json:"password1" form:"password1"`
	Password2 string    `json:"password2" form:"password2"`
	Age       formValue `json:"age" form:"-"`
}

func (r signupRequest) values() map[string]string {
	return map[string]string{
		"username": r.Username,
		"email":    r.Email,
		"age":      string(r.Age),
	}
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Next     string `json:"next" form:"next"`
}

// SignupForm handles GET /api/auth/signup
// @Summary Sign-up form
// @Tags auth
// @Produce json
// @Success 200 {object} object{form=models.Form}
// @Router /auth/signup [get]
func (s *Server) SignupForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"form": models.SignupForm(validation.MinimumAge)})
}

// Signup handles POST /api/auth/signup
// @Summary Register a new user
// @Description Create an account. Every field error is reported at once.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{username=string,email=string,password1=string,password2=string,age=integer} true "Sign-up data"
// @Success 302
// @Failure 400 {object} object{error=string,fields=models.FieldErrors,form=models.Form}
// @Router /auth/signup [post]
func (s *Server) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	if req.Age == "" {
		req.Age = formValue(c.FormValue("age"))
	}

	user, err := s.userService.Register(c.UserContext(), service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password1: req.Password1,
		Password2: req.Password2,
		Age:       string(req.Age),
	})
	if err != nil {
		if models.IsValidation(err) {
			return respondFormError(c, err, models.SignupForm(validation.MinimumAge), req.values(), nil)
		}
		return respondError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered", "user_id", user.ID)
	return c.Redirect("/")
}

// LoginForm handles GET /api/auth/login
// @Summary Login form
// @Tags auth
// @Produce json
// @Param next query string false "Where to go after logging in"
// @Success 200 {object} object{form=models.Form,next=string}
// @Router /auth/login [get]
func (s *Server) LoginForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"form": models.LoginForm(),
		"next": safeNext(c.Query("next")),
	})
}

// Login handles POST /api/auth/login
// @Summary User login
// @Description Authenticate user, set the session cookie and return a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string,next=string} true "Login credentials"
// @Success 200 {object} object{token=string,user=models.User}
// @Success 302
// @Failure 400 {object} object{error=string,form=models.Form}
// @Failure 401 {object} object{error=string,form=models.Form}
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	values := map[string]string{"username": req.Username}

	fields := models.FieldErrors{}
	if req.Username == "" {
		fields.Add("username", validation.ErrRequired.Error())
	}
	if req.Password == "" {
		fields.Add("password", validation.ErrRequired.Error())
	}
	if len(fields) > 0 {
		return respondFormError(c, models.NewFieldValidationError(fields), models.LoginForm(), values, nil)
	}

	user, err := s.userService.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if models.ErrorCode(err) == models.CodeUnauthorized {
			return respondFormError(c, err, models.LoginForm(), values, nil)
		}
		return respondError(c, err)
	}

	token, expiresAt, err := s.generateToken(user)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	next := req.Next
	if next == "" {
		next = c.Query("next")
	}
	if next = safeNext(next); next != "" {
		return c.Redirect(next)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Description Revoke the current token and clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 302
// @Router /auth/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	jti, _ := c.Locals("jti").(string)
	expiresAt, _ := c.Locals("tokenExpiresAt").(time.Time)

	if ttl := time.Until(expiresAt); jti != "" && ttl > 0 {
		if err := s.revokeToken(c, jti, ttl); err != nil {
			return respondError(c, models.NewInternalError(err))
		}
	}

	c.ClearCookie(sessionCookie)
	return c.Redirect("/")
}
