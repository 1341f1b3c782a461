package controllers

// Controllers groups every HTTP controller for route registration
type Controllers struct {
	Auth    *AuthController
	User    *UserController
	Predict *PredictController
	Session *SessionController
	Major   *MajorController
}
