package ws

import (
	"encoding/json"
	"testing"

	"github.com/rafabene/plazamap-backend/internal/infrastructure/logging"
)

func TestHub_Publish(t *testing.T) {
	hub := NewHub(logging.NewSlogLogger("error"))

	t.Run("monta o envelope do evento", func(t *testing.T) {
		hub.BroadcastPointDeleted("point-1")

		select {
		case raw := <-hub.broadcast:
			var event Event
			if err := json.Unmarshal(raw, &event); err != nil {
				t.Fatalf("envelope inválido: %v", err)
			}
			if event.Event != "point.deleted" {
				t.Errorf("esperava point.deleted, recebeu %s", event.Event)
			}
			payload, ok := event.Payload.(map[string]interface{})
			if !ok || payload["id"] != "point-1" {
				t.Errorf("payload incorreto: %v", event.Payload)
			}
		default:
			t.Fatal("nenhum evento publicado")
		}
	})

	t.Run("buffer cheio descarta sem bloquear", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			hub.BroadcastPointCreated(map[string]string{"id": "p"})
		}
		// Chegar aqui já prova que publish não bloqueou
	})
}
