package constant

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	IdentityModeLocal  = "local"
	IdentityModeRemote = "remote"

	MailModeLog  = "log"
	MailModeSMTP = "smtp"

	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)
