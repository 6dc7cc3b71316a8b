package firebase

import (
	"context"
	"errors"
	"fmt"

	"chat-notification-srv/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Connect initializes the Firebase Admin SDK app.
// Without a credentials file the SDK falls back to Application Default Credentials.
func Connect(ctx context.Context, cfg config.FirebaseConfig) (*firebase.App, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, clientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	return app, nil
}

// Messaging returns the FCM client of app.
func Messaging(ctx context.Context, app *firebase.App) (*messaging.Client, error) {
	if app == nil {
		return nil, ErrAppRequired
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize FCM client: %w", err)
	}
	return client, nil
}

// Firestore opens a client on the configured named database.
func Firestore(ctx context.Context, cfg config.FirebaseConfig) (*firestore.Client, error) {
	databaseID := cfg.DatabaseID
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}
	client, err := firestore.NewClientWithDatabase(ctx, cfg.ProjectID, databaseID, clientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Firestore database %q: %w", databaseID, err)
	}
	return client, nil
}

// ErrAppRequired is returned by Messaging when no app is given.
var ErrAppRequired = errors.New("firebase app is required")

func clientOptions(cfg config.FirebaseConfig) []option.ClientOption {
	if cfg.CredentialsFile == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsFile)}
}
