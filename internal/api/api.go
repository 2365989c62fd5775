package api

import "collegehub/internal/session"

// API bundles one Client with every resource service, the way the web client
// exported one service object per backend resource.
type API struct {
	Client     *Client
	Auth       *AuthService
	News       *NewsService
	Clubs      *ClubsService
	Projects   *ProjectsService
	Schedule   *ScheduleService
	Activities *ActivitiesService
	Parliament *ParliamentService
	Chat       *ChatService
	Messages   *DirectMessagesService
	Feedback   *FeedbackService
	Uploads    *UploadService
}

func New(baseURL string, store session.Store) *API {
	c := NewClient(baseURL, store)
	return &API{
		Client:     c,
		Auth:       &AuthService{client: c, store: store},
		News:       &NewsService{client: c},
		Clubs:      &ClubsService{client: c},
		Projects:   &ProjectsService{client: c},
		Schedule:   &ScheduleService{client: c},
		Activities: &ActivitiesService{client: c},
		Parliament: &ParliamentService{client: c},
		Chat:       &ChatService{client: c},
		Messages:   &DirectMessagesService{client: c},
		Feedback:   &FeedbackService{client: c},
		Uploads:    &UploadService{client: c},
	}
}
