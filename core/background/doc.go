// Package background queues per-request tasks that run after the response
// has been sent, such as notification delivery or audit writes.
//
//	func createUser(ctx handler.Context) (any, error) {
//		user, err := users.Create(ctx, input)
//		if err != nil {
//			return nil, err
//		}
//		background.Add(ctx, func(ctx context.Context) error {
//			return mailer.SendWelcome(ctx, user.Email)
//		})
//		return user, nil
//	}
//
// The dispatcher runs queued tasks once the response is written. Task
// failures are logged and never surface to the client.
package background
