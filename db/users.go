package db

import (
	"civicpulse/types"
	"context"

	"cloud.google.com/go/firestore"
)

const usersCollection = "users"

// Users is the read contract over the user store.
type Users struct {
	Client *firestore.Client
}

func (u *Users) Count(ctx context.Context) (int, error) {
	docs, err := u.Client.Collection(usersCollection).Documents(ctx).GetAll()
	if err != nil {
		return 0, storeErr("counting users", err)
	}
	return len(docs), nil
}

// Get fetches a user profile by ID.
func (u *Users) Get(ctx context.Context, userID string) (types.User, error) {
	var user types.User

	doc, err := u.Client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		return user, storeErr("fetching user "+userID, err)
	}
	if err := doc.DataTo(&user); err != nil {
		return user, storeErr("decoding user "+userID, err)
	}
	user.ID = doc.Ref.ID
	return user, nil
}
