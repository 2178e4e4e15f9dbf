package farcaster

const ProtocolEthereum = "PROTOCOL_ETHEREUM"

type User struct {
	FID         uint64 `json:"fid"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	PfpURL      string `json:"pfp_url"`
	Pfp         *Pfp   `json:"pfp,omitempty"`
}

type Pfp struct {
	URL string `json:"url"`
}

// AvatarURL prefers the flat pfp_url field and falls back to the nested pfp.url one.
func (u User) AvatarURL() string {
	if u.PfpURL != "" {
		return u.PfpURL
	}
	if u.Pfp != nil {
		return u.Pfp.URL
	}
	return ""
}

// Verification is the address body of a hub verification message.
type Verification struct {
	Protocol string
	Address  string
}

type transferResponse struct {
	Transfer *struct {
		To uint64 `json:"to"`
	} `json:"transfer"`
}

type userResponse struct {
	User *User `json:"user"`
}

type usersResponse struct {
	Users []User `json:"users"`
}

type verificationsResponse struct {
	Messages []struct {
		Data *struct {
			VerificationAddAddressBody *struct {
				Protocol string `json:"protocol"`
				Address  string `json:"address"`
			} `json:"verificationAddAddressBody"`
		} `json:"data"`
	} `json:"messages"`
}
