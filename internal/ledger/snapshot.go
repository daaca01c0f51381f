package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	structures "github.com/mwansa-dev/voteledger/internal/structures"
)

const (
	electionsFile      = "elections.json"
	votersFile         = "voters.json"
	candidatesFile     = "candidates.json"
	votesFile          = "votes.json"
	voterElectionsFile = "voter-elections.json"
)

// writeSnapshot replaces a snapshot file atomically, a crash mid-write never
// leaves a truncated live file behind.
func (store *Store) writeSnapshot(fileName string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(store.dataDir, fileName+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return err
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return err
	}

	return os.Rename(tmpFile.Name(), filepath.Join(store.dataDir, fileName))
}

func (store *Store) readSnapshot(fileName string, target any) error {
	data, err := os.ReadFile(filepath.Join(store.dataDir, fileName))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("snapshot %s is corrupt: %w", fileName, err)
	}

	return nil
}

func (store *Store) loadSnapshots() error {
	if err := store.readSnapshot(electionsFile, &store.elections); err != nil {
		return err
	}

	if err := store.readSnapshot(votersFile, &store.voters); err != nil {
		return err
	}

	if err := store.readSnapshot(candidatesFile, &store.candidates); err != nil {
		return err
	}

	if err := store.readSnapshot(votesFile, &store.votes); err != nil {
		return err
	}

	voterElections := make(map[string][]string)
	if err := store.readSnapshot(voterElectionsFile, &voterElections); err != nil {
		return err
	}

	for voterId, electionIds := range voterElections {
		set := structures.NewStringSet()
		for _, electionId := range electionIds {
			set.Add(electionId)
		}
		store.voterElections[voterId] = set
	}

	return nil
}

func (store *Store) persistElections() error {
	return store.writeSnapshot(electionsFile, store.elections)
}

func (store *Store) persistVoters() error {
	return store.writeSnapshot(votersFile, store.voters)
}

func (store *Store) persistCandidates() error {
	return store.writeSnapshot(candidatesFile, store.candidates)
}

func (store *Store) persistVotes() error {
	return store.writeSnapshot(votesFile, store.votes)
}

func (store *Store) persistVoterElections() error {
	serializable := make(map[string][]string, len(store.voterElections))

	for voterId, set := range store.voterElections {
		electionIds := set.ToSlice()
		sort.Strings(electionIds)
		serializable[voterId] = electionIds
	}

	return store.writeSnapshot(voterElectionsFile, serializable)
}
