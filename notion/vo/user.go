package vo

type UserType string

const (
	UserTypePerson UserType = "person"
	UserTypeBot    UserType = "bot"
)

var userTypes = newEnumSet(UserTypePerson, UserTypeBot)

func (t *UserType) UnmarshalJSON(data []byte) (err error) {
	*t, err = decodeEnum(data, userTypes, "user type")
	return err
}

type BotOwnerType string

const (
	BotOwnerWorkspace BotOwnerType = "workspace"
	BotOwnerUser      BotOwnerType = "user"
)

var botOwnerTypes = newEnumSet(BotOwnerWorkspace, BotOwnerUser)

func (t *BotOwnerType) UnmarshalJSON(data []byte) (err error) {
	*t, err = decodeEnum(data, botOwnerTypes, "bot owner type")
	return err
}

// User is a person or bot. Partial users carry only object and id.
type User struct {
	Object    string   `json:"object"`
	ID        string   `json:"id"`
	Name      string   `json:"name,omitempty"`
	AvatarURL string   `json:"avatar_url,omitempty"`
	Type      UserType `json:"type,omitempty"`
	Person    *Person  `json:"person,omitempty"`
	Bot       *Bot     `json:"bot,omitempty"`
}

type Person struct {
	Email string `json:"email,omitempty"`
}

type Bot struct {
	Owner         *BotOwner `json:"owner,omitempty"`
	WorkspaceName string    `json:"workspace_name,omitempty"`
}

type BotOwner struct {
	Type      BotOwnerType `json:"type"`
	Workspace bool         `json:"workspace,omitempty"`
	User      *User        `json:"user,omitempty"`
}

// UserRef is the minimal user reference accepted in requests.
func UserRef(id string) User {
	return User{Object: "user", ID: id}
}
