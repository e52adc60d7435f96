package service

import (
	"encoding/json"

	"contentdesk/internal/content/model"
	"contentdesk/internal/content/store"
	"contentdesk/socket"
)

type ContentService struct {
	Store *store.ContentStore
	Hub   *socket.Hub
}

func NewContentService(store *store.ContentStore, hub *socket.Hub) *ContentService {
	return &ContentService{Store: store, Hub: hub}
}

func (s *ContentService) ListContents() []model.Content {
	return s.Store.List()
}

func (s *ContentService) CreateContent(fields model.ContentFields) (model.Content, error) {
	content, err := s.Store.Create(fields)
	if err != nil {
		return model.Content{}, err
	}
	s.broadcast(socket.ContentCreatedType, content)
	return content, nil
}

func (s *ContentService) UpdateContent(id string, fields model.ContentFields) (model.Content, error) {
	content, err := s.Store.Update(id, fields)
	if err != nil {
		return model.Content{}, err
	}
	s.broadcast(socket.ContentUpdatedType, content)
	return content, nil
}

func (s *ContentService) DeleteContent(id string) {
	s.Store.Delete(id)
	s.broadcast(socket.ContentDeletedType, map[string]string{"id": id})
}

func (s *ContentService) broadcast(eventType string, payload interface{}) {
	payloadBytes, _ := json.Marshal(payload)
	s.Hub.Broadcast <- socket.Event{
		Type:    eventType,
		Payload: json.RawMessage(payloadBytes),
	}
}
