package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"collegehub/internal/backend"
	"collegehub/internal/media"
)

// defaultResetToken is the fallback when ADMIN_RESET_TOKEN is unset. Known
// deployment hazard: a production deploy without the variable accepts this
// value.
const defaultResetToken = "admin-reset-2025"

type Server struct {
	port       int
	backend    *backend.Client
	media      media.Uploader
	resetToken string
	log        *logrus.Logger
}

// New wires a proxy server from explicit dependencies. media may be nil when
// Cloudinary is not configured; the upload handler reports that per request.
func New(bc *backend.Client, uploader media.Uploader, resetToken string, log *logrus.Logger) *Server {
	if resetToken == "" {
		resetToken = defaultResetToken
	}
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		backend:    bc,
		media:      uploader,
		resetToken: resetToken,
		log:        log,
	}
}

func NewServer() *http.Server {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	uploader, err := media.NewCloudinaryFromEnv()
	if err != nil {
		log.WithError(err).Fatal("cloudinary configuration is invalid")
	}
	if uploader == nil {
		log.Warn("CLOUDINARY_CLOUD_NAME unset, uploads will be rejected")
	}

	srv := New(backend.New(""), uploaderOrNil(uploader), os.Getenv("ADMIN_RESET_TOKEN"), log)
	srv.port = port

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", srv.port),
		Handler:      srv.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// uploaderOrNil keeps a typed nil *CloudinaryUploader from sneaking into the
// media.Uploader interface field.
func uploaderOrNil(u *media.CloudinaryUploader) media.Uploader {
	if u == nil {
		return nil
	}
	return u
}
