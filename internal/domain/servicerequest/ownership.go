package servicerequest

import "github.com/eztechpal/eztech-portal/internal/models"

// Owns decides whether user sees a request: matching phone or matching name.
// There is no customer id on a request. Two customers sharing a name or a
// phone number see each other's requests; that is the captured behavior of
// the portal and tightening it to a real foreign key would hide records
// customers could previously see.
func Owns(user models.User, req models.ServiceRequest) bool {
	return req.Phone == user.Phone || req.CustomerName == user.Name
}
