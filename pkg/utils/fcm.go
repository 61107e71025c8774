package utils

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

var fcmClient *messaging.Client

// InitFCM menginisialisasi koneksi ke Firebase Cloud Messaging.
// Kalau file credential tidak diset (FIREBASE_CREDENTIALS), push notif
// dimatikan dan aplikasi tetap jalan normal.
func InitFCM() {
	credPath := os.Getenv("FIREBASE_CREDENTIALS")
	if credPath == "" {
		log.Println("FIREBASE_CREDENTIALS kosong, push notification nonaktif")
		return
	}

	opt := option.WithCredentialsFile(credPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Printf("Gagal inisialisasi firebase app: %v", err)
		return
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.Printf("Gagal ambil messaging client: %v", err)
		return
	}

	fcmClient = client
	log.Println("🔥 Firebase Cloud Messaging Ready!")
}

// SendPush mengirim pesan ke satu device (FCM token). Best-effort:
// error cuma dilog, tidak pernah menggagalkan operasi pemanggil.
func SendPush(token string, title string, body string, data map[string]string) {
	if fcmClient == nil || token == "" {
		return
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := fcmClient.Send(context.Background(), message); err != nil {
		log.Printf("Gagal kirim push notification: %v", err)
	}
}
