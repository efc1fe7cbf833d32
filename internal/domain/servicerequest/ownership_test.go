package servicerequest

import (
	"testing"

	"github.com/eztechpal/eztech-portal/internal/models"
)

func TestOwns(t *testing.T) {
	user := models.User{ID: "9", Name: "Siti Rahma", Phone: "0812333", Role: models.RoleCustomer}

	tests := []struct {
		name string
		req  models.ServiceRequest
		want bool
	}{
		{"phone matches", models.ServiceRequest{CustomerName: "someone else", Phone: "0812333"}, true},
		{"name matches", models.ServiceRequest{CustomerName: "Siti Rahma", Phone: "0899999"}, true},
		{"both match", models.ServiceRequest{CustomerName: "Siti Rahma", Phone: "0812333"}, true},
		{"neither matches", models.ServiceRequest{CustomerName: "Andi", Phone: "0899999"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Owns(user, tt.req); got != tt.want {
				t.Errorf("Owns = %v, want %v", got, tt.want)
			}
		})
	}
}
