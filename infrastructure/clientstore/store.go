// Package clientstore carrega e salva os perfis de clientes em um arquivo
// JSON, no mesmo formato do clients.json original. O núcleo de análise só
// recebe perfis já carregados.
package clientstore

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/vfg2006/creative-performance-api/internal/domain"
)

type Store interface {
	List() ([]*domain.ClientProfile, error)
	Get(name string) (*domain.ClientProfile, error)
	Save(profile *domain.ClientProfile) error
	Delete(name string) error
}

type fileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) load() (map[string]*domain.ClientProfile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*domain.ClientProfile{}, nil
		}
		return nil, fmt.Errorf("erro ao ler o arquivo de clientes: %w", err)
	}

	profiles := map[string]*domain.ClientProfile{}
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("erro ao decodificar o arquivo de clientes: %w", err)
	}

	// O nome é a chave do mapa; garante consistência com o campo
	for name, profile := range profiles {
		profile.Name = name
	}

	return profiles, nil
}

func (s *fileStore) persist(profiles map[string]*domain.ClientProfile) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao codificar o arquivo de clientes: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("erro ao gravar o arquivo de clientes: %w", err)
	}

	return nil
}

func (s *fileStore) List() ([]*domain.ClientProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return nil, err
	}

	list := make([]*domain.ClientProfile, 0, len(profiles))
	for _, profile := range profiles {
		list = append(list, profile)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})

	return list, nil
}

func (s *fileStore) Get(name string) (*domain.ClientProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return nil, err
	}

	profile, ok := profiles[name]
	if !ok {
		return nil, nil
	}

	return profile, nil
}

func (s *fileStore) Save(profile *domain.ClientProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return err
	}

	profiles[profile.Name] = profile

	return s.persist(profiles)
}

func (s *fileStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return err
	}

	delete(profiles, name)

	return s.persist(profiles)
}
