package handlers

import (
	"iotpersistence/domain"
)

// UserInfo is the public view of a user.
type UserInfo struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	Role     string `json:"role"`
}

// UsersResponse is the body of GET /admin.
type UsersResponse struct {
	Users []UserInfo `json:"users"`
}

// UserDetailsResponse is the body of GET /admin/user.
type UserDetailsResponse struct {
	UserInfo
	States map[string]string `json:"states"`
}

// toUserInfo converts a domain user to API response. The hash is never copied.
func toUserInfo(u domain.User) UserInfo {
	return UserInfo{
		Username: u.Name,
		IsAdmin:  u.IsAdmin(),
		Role:     u.Role.String(),
	}
}

func toUsersResponse(users []domain.User) UsersResponse {
	out := make([]UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, toUserInfo(u))
	}
	return UsersResponse{Users: out}
}

func toUserDetailsResponse(d domain.UserDetails) UserDetailsResponse {
	states := d.States
	if states == nil {
		states = map[string]string{}
	}
	return UserDetailsResponse{
		UserInfo: toUserInfo(d.User),
		States:   states,
	}
}
