package domain

// Submission forms. Dates arrive as YYYY-MM-DD strings the way the web forms
// produce them; the usecase layer parses them after validation passes. Every
// form is validated in full before any remote call is made.

// ApplicationForm creates a new application.
type ApplicationForm struct {
	CompanyName       string       `json:"company_name" validate:"required,max=200"`
	PositionTitle     string       `json:"position_title" validate:"required,max=200"`
	ApplicationDate   string       `json:"application_date" validate:"required,iso_date"`
	ApplicationSource string       `json:"application_source" validate:"required,oneof=LINKEDIN COMPANY_WEBSITE JOB_BOARD REFERRAL OTHER"`
	Status            string       `json:"status" validate:"omitempty,oneof=DRAFT APPLIED INTERVIEWING REJECTED OFFERED ACCEPTED WITHDRAWN"`
	JobDescription    *string      `json:"job_description,omitempty"`
	Location          *string      `json:"location,omitempty" validate:"omitempty,max=200"`
	JobType           *string      `json:"job_type,omitempty" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
	WorkMode          *string      `json:"work_mode,omitempty" validate:"omitempty,oneof=REMOTE HYBRID ON_SITE"`
	SalaryRange       *SalaryRange `json:"salary_range,omitempty"`
	NextStep          *string      `json:"next_step,omitempty"`
	NextStepDate      *string      `json:"next_step_date,omitempty" validate:"omitempty,iso_date"`
	Notes             *string      `json:"notes,omitempty"`
}

// ApplicationUpdateForm patches an existing application. Nil means unchanged.
type ApplicationUpdateForm struct {
	CompanyName       *string      `json:"company_name,omitempty" validate:"omitempty,min=1,max=200"`
	PositionTitle     *string      `json:"position_title,omitempty" validate:"omitempty,min=1,max=200"`
	ApplicationDate   *string      `json:"application_date,omitempty" validate:"omitempty,iso_date"`
	ApplicationSource *string      `json:"application_source,omitempty" validate:"omitempty,oneof=LINKEDIN COMPANY_WEBSITE JOB_BOARD REFERRAL OTHER"`
	Status            *string      `json:"status,omitempty" validate:"omitempty,oneof=DRAFT APPLIED INTERVIEWING REJECTED OFFERED ACCEPTED WITHDRAWN"`
	JobDescription    *string      `json:"job_description,omitempty"`
	Location          *string      `json:"location,omitempty" validate:"omitempty,max=200"`
	JobType           *string      `json:"job_type,omitempty" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
	WorkMode          *string      `json:"work_mode,omitempty" validate:"omitempty,oneof=REMOTE HYBRID ON_SITE"`
	SalaryRange       *SalaryRange `json:"salary_range,omitempty"`
	NextStep          *string      `json:"next_step,omitempty"`
	NextStepDate      *string      `json:"next_step_date,omitempty" validate:"omitempty,iso_date"`
	Notes             *string      `json:"notes,omitempty"`
}

// InterviewForm creates a new interview round.
type InterviewForm struct {
	ApplicationID    string  `json:"application_id" validate:"required,uuid4"`
	RoundNumber      int     `json:"round_number" validate:"required,min=1"`
	InterviewDate    string  `json:"interview_date" validate:"required"`
	InterviewType    string  `json:"interview_type" validate:"required,oneof=PHONE VIDEO ON_SITE TECHNICAL BEHAVIORAL"`
	Status           string  `json:"status" validate:"omitempty,oneof=SCHEDULED COMPLETED CANCELLED RESCHEDULED"`
	InterviewerName  *string `json:"interviewer_name,omitempty" validate:"omitempty,max=200"`
	InterviewerTitle *string `json:"interviewer_title,omitempty" validate:"omitempty,max=200"`
	Feedback         *string `json:"feedback,omitempty"`
	NextSteps        *string `json:"next_steps,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// InterviewUpdateForm patches an existing interview.
type InterviewUpdateForm struct {
	RoundNumber      *int    `json:"round_number,omitempty" validate:"omitempty,min=1"`
	InterviewDate    *string `json:"interview_date,omitempty"`
	InterviewType    *string `json:"interview_type,omitempty" validate:"omitempty,oneof=PHONE VIDEO ON_SITE TECHNICAL BEHAVIORAL"`
	Status           *string `json:"status,omitempty" validate:"omitempty,oneof=SCHEDULED COMPLETED CANCELLED RESCHEDULED"`
	InterviewerName  *string `json:"interviewer_name,omitempty" validate:"omitempty,max=200"`
	InterviewerTitle *string `json:"interviewer_title,omitempty" validate:"omitempty,max=200"`
	Feedback         *string `json:"feedback,omitempty"`
	NextSteps        *string `json:"next_steps,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// ReferralForm creates a new referral.
type ReferralForm struct {
	ApplicationID string  `json:"application_id" validate:"required,uuid4"`
	ReferrerName  string  `json:"referrer_name" validate:"required,max=200"`
	ReferrerEmail *string `json:"referrer_email,omitempty" validate:"omitempty,basic_email"`
	ReferrerPhone *string `json:"referrer_phone,omitempty" validate:"omitempty,valid_phone"`
	Relationship  string  `json:"relationship" validate:"required,max=100"`
	Notes         *string `json:"notes,omitempty"`
}

// ReferralUpdateForm patches an existing referral.
type ReferralUpdateForm struct {
	ReferrerName  *string `json:"referrer_name,omitempty" validate:"omitempty,min=1,max=200"`
	ReferrerEmail *string `json:"referrer_email,omitempty" validate:"omitempty,basic_email"`
	ReferrerPhone *string `json:"referrer_phone,omitempty" validate:"omitempty,valid_phone"`
	Relationship  *string `json:"relationship,omitempty" validate:"omitempty,min=1,max=100"`
	Notes         *string `json:"notes,omitempty"`
}

// PreferencesForm updates display preferences.
type PreferencesForm struct {
	ViewMode string `json:"view_mode" validate:"required,oneof=card list"`
	FontSize string `json:"font_size" validate:"required,oneof=sm md lg"`
}

// SignUpForm registers a new account.
type SignUpForm struct {
	Email    string `json:"email" validate:"required,basic_email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// SignInForm authenticates an existing account.
type SignInForm struct {
	Email    string `json:"email" validate:"required,basic_email"`
	Password string `json:"password" validate:"required"`
}
