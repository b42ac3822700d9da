package router

import (
	"github.com/gin-gonic/gin"
	"github.com/hirecoder/backend/internal/interfaces/http/handler"
)

// Handlers are the marketplace's HTTP handlers
type Handlers struct {
	Auth        *handler.AuthHandler
	Catalog     *handler.CatalogHandler
	Profile     *handler.ProfileHandler
	Details     *handler.ProfileDetailsHandler
	Home        *handler.HomeHandler
	Postings    *handler.JobPostingHandler
	Invitations *handler.JobInvitationHandler
	Proposals   *handler.JobProposalHandler
	Milestones  *handler.MilestoneHandler
	Contracts   *handler.ContractHandler
	Timesheets  *handler.TimesheetHandler
	System      *handler.SystemHandler
}

// MarketplaceGroups builds the /api/v1 route groups. The authenticate chain
// guards everything except the public auth endpoints, the landing-page
// recommendations and system info.
func MarketplaceGroups(h Handlers, authenticate ...gin.HandlerFunc) []RouteRegistrar {
	public := NewDomainGroup("auth-public", "/auth")
	public.POST("/register", h.Auth.Register)
	public.POST("/login", h.Auth.Login)
	public.POST("/refresh", h.Auth.RefreshToken)
	public.POST("/verify-email", h.Auth.VerifyEmail)
	public.POST("/resend-verification", h.Auth.ResendVerification)
	public.POST("/password-reset", h.Auth.RequestPasswordReset)
	public.POST("/password-reset/confirm", h.Auth.ConfirmPasswordReset)

	session := NewDomainGroup("auth", "/auth").Use(authenticate...)
	session.POST("/logout", h.Auth.Logout)
	session.GET("/me", h.Auth.GetCurrentUser)
	session.PUT("/password", h.Auth.ChangePassword)

	landing := NewDomainGroup("home", "/home")
	landing.GET("/recommended-jobs", h.Home.RecommendedJobs)
	landing.GET("/recommended-jobs/:id", h.Home.RecommendedJob)
	landing.GET("/recommended-coders", h.Home.RecommendedCoders)

	system := NewDomainGroup("system", "/system")
	system.GET("/info", h.System.GetSystemInfo)

	api := NewDomainGroup("marketplace", "").Use(authenticate...)

	api.GET("/technologies", h.Catalog.ListTechnologies)
	api.POST("/technologies", h.Catalog.CreateTechnology)
	api.POST("/technologies/:id/approve", h.Catalog.ApproveTechnology)
	api.GET("/expertise", h.Catalog.ListExpertise)
	api.GET("/timezones", h.Catalog.ListTimeZones)
	api.POST("/timezones", h.Catalog.CreateTimeZone)

	profile := api.Group("profile", "/profile")
	profile.GET("/skills", h.Profile.ListSkills)
	profile.POST("/skills", h.Profile.AddSkill)
	profile.DELETE("/skills/:id", h.Profile.RemoveSkill)
	profile.GET("/certifications", h.Profile.ListCertifications)
	profile.POST("/certifications", h.Profile.AddCertification)
	profile.DELETE("/certifications/:id", h.Profile.RemoveCertification)
	profile.GET("/address", h.Details.GetAddress)
	profile.PUT("/address", h.Details.SaveAddress)
	profile.GET("/digital-presence", h.Details.GetDigitalPresence)
	profile.PUT("/digital-presence", h.Details.SaveDigitalPresence)
	profile.GET("/company", h.Details.GetCompanyDetails)
	profile.PUT("/company", h.Details.SaveCompanyDetails)
	profile.GET("/experience", h.Details.GetExperience)
	profile.PUT("/experience", h.Details.SaveExperience)
	profile.GET("/degrees", h.Details.ListDegrees)
	profile.POST("/degrees", h.Details.AddDegree)
	profile.DELETE("/degrees/:id", h.Details.RemoveDegree)
	profile.GET("/education", h.Details.GetEducation)
	profile.PUT("/education", h.Details.SaveEducation)
	profile.POST("/files", h.Details.RequestFileUpload)
	profile.GET("/files/:kind", h.Details.GetFileURL)

	postings := api.Group("job-postings", "/job-postings")
	postings.GET("", h.Postings.ListPostings)
	postings.POST("", h.Postings.CreatePosting)
	postings.GET("/:id", h.Postings.GetPosting)
	postings.PATCH("/:id", h.Postings.UpdatePostingStatus)

	invitations := api.Group("invitations", "/invitations")
	invitations.GET("", h.Invitations.ListInvitations)
	invitations.POST("", h.Invitations.SendInvitation)
	invitations.GET("/:id", h.Invitations.GetInvitation)
	invitations.PATCH("/:id", h.Invitations.UpdateInvitationStatus)

	proposals := api.Group("proposals", "/proposals")
	proposals.GET("", h.Proposals.ListProposals)
	proposals.POST("", h.Proposals.SubmitProposal)
	proposals.GET("/:id", h.Proposals.GetProposal)
	proposals.PATCH("/:id", h.Proposals.UpdateProposalStatus)
	proposals.POST("/:id/attachment", h.Proposals.RequestAttachmentUpload)
	proposals.GET("/:id/attachment", h.Proposals.GetAttachmentURL)

	milestones := api.Group("milestones", "/milestones")
	milestones.GET("", h.Milestones.ListMilestones)
	milestones.POST("", h.Milestones.CreateMilestone)
	milestones.GET("/:id", h.Milestones.GetMilestone)
	milestones.PATCH("/:id", h.Milestones.UpdateMilestoneStatus)

	contracts := api.Group("contracts", "/contracts")
	contracts.GET("", h.Contracts.ListContracts)
	contracts.GET("/:id", h.Contracts.GetContract)
	contracts.POST("/:id/rating", h.Contracts.RateContract)
	contracts.POST("/:id/close", h.Contracts.CloseContract)

	timesheets := api.Group("timesheets", "/timesheets")
	timesheets.GET("", h.Timesheets.ListTimesheets)
	timesheets.POST("", h.Timesheets.SubmitTimesheet)
	timesheets.GET("/:id", h.Timesheets.GetTimesheet)
	timesheets.PUT("/:id", h.Timesheets.ReviewTimesheet)
	timesheets.PATCH("/:id", h.Timesheets.ReviewTimesheet)

	return []RouteRegistrar{public, session, landing, system, api}
}
