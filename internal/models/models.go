package models

type Club struct {
	ID            int               `json:"id,omitempty"`
	Name          string            `json:"name"`
	Category      string            `json:"category,omitempty"`
	Description   string            `json:"description,omitempty"`
	Color         string            `json:"color,omitempty"`
	ClubAvatar    string            `json:"clubAvatar,omitempty"`
	BackgroundURL string            `json:"backgroundUrl,omitempty"`
	SocialLinks   map[string]string `json:"socialLinks,omitempty"`
	CreatorID     int               `json:"creatorId,omitempty"`
	MemberCount   int               `json:"memberCount,omitempty"`
}

type ProjectStatus string

const (
	ProjectDeveloping ProjectStatus = "developing"
	ProjectMVP        ProjectStatus = "mvp"
	ProjectScript     ProjectStatus = "script"
	ProjectCompleted  ProjectStatus = "completed"
)

type Project struct {
	ID            int           `json:"id,omitempty"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	Status        ProjectStatus `json:"status,omitempty"`
	Author        string        `json:"author,omitempty"`
	Needed        []string      `json:"needed,omitempty"`
	BackgroundURL string        `json:"backgroundUrl,omitempty"`
}

type MeetingType string

const (
	MeetingLecture  MeetingType = "lecture"
	MeetingSeminar  MeetingType = "seminar"
	MeetingLab      MeetingType = "lab"
	MeetingPractice MeetingType = "practice"
)

type Meeting struct {
	ID        int         `json:"id,omitempty"`
	Date      string      `json:"date"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	Subject   string      `json:"subject"`
	Room      string      `json:"room,omitempty"`
	Type      MeetingType `json:"type,omitempty"`
}

type NewsPost struct {
	ID        int      `json:"id,omitempty"`
	Author    string   `json:"author,omitempty"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags,omitempty"`
	Likes     int      `json:"likes,omitempty"`
	Liked     bool     `json:"liked,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

type Comment struct {
	ID        int    `json:"id,omitempty"`
	NewsID    int    `json:"newsId,omitempty"`
	Author    string `json:"author,omitempty"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type Activity struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Category    string `json:"category,omitempty"`
}

type ParliamentMember struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	GroupName   string `json:"groupName,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

type Message struct {
	ID        int    `json:"id,omitempty"`
	Author    string `json:"author,omitempty"`
	AuthorID  int    `json:"authorId,omitempty"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type DirectMessage struct {
	ID        int    `json:"id,omitempty"`
	FromID    int    `json:"fromId,omitempty"`
	ToID      int    `json:"toId,omitempty"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type Feedback struct {
	ID        int    `json:"id,omitempty"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// UploadResult is what the upload proxy answers with once the asset is hosted.
type UploadResult struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Size     int    `json:"size"`
	Format   string `json:"format"`
}
