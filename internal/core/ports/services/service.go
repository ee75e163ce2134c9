package services

// ServiceContainer holds all service interfaces the handlers depend on.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
	Reporting   ReportingSvcFacade
	User        UserSvcFacade
}
