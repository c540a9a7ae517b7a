/*
Package graph merges a pronunciation lexicon into Neo4j.

Every word becomes a (:Word {word, phones}) node linked to one
(:Phone {phone}) node per phone by a [:PHONE {pos}] relationship, so the
phone inventory is simply the set of Phone nodes.
*/
package graph

import (
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"

	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/lexicon"
)

// Runner is satisfied by neo4j.Transaction.
type Runner interface {
	Run(cypher string, params map[string]interface{}) (neo4j.Result, error)
}

// Writer is satisfied by neo4j.Session.
type Writer interface {
	WriteTransaction(work neo4j.TransactionWork, configurers ...func(*neo4j.TransactionConfig)) (interface{}, error)
}

var Indexes = []string{
	"CREATE INDEX word_index IF NOT EXISTS FOR (w:Word) ON (w.word);",
	"CREATE INDEX phone_index IF NOT EXISTS FOR (p:Phone) ON (p.phone);",
}

// MemoizedQuery returns the MERGE statement for a word with n phones.
type MemoizedQuery func(int) string

func MemoQuery() MemoizedQuery {
	cache := make(map[int]string)
	return func(n int) string {
		if val, found := cache[n]; found {
			return val
		}
		var qry strings.Builder
		qry.WriteString("MERGE (w:Word {word: $word}) SET w.phones = $phones")
		for i := 0; i < n; i++ {
			fmt.Fprintf(&qry, " MERGE (p%d:Phone {phone: $p%d})", i, i)
			fmt.Fprintf(&qry, " MERGE (w)-[:PHONE {pos: %d}]->(p%d)", i, i)
		}
		qry.WriteString(";")
		result := qry.String()
		cache[n] = result
		return result
	}
}

// Params returns the query parameters for e along with its phone count.
func Params(e lexicon.Entry) (map[string]interface{}, int) {
	phones := strings.Fields(e.Phones)
	pmap := map[string]interface{}{
		"word":   e.Word,
		"phones": e.Phones,
	}
	for i, p := range phones {
		pmap[fmt.Sprint("p", i)] = p
	}
	return pmap, len(phones)
}

func CreateIndexes(tx Runner) error {
	for _, idx := range Indexes {
		if _, err := tx.Run(idx, map[string]interface{}{}); err != nil {
			return fmt.Errorf("creating index %q: %w", idx, err)
		}
	}
	return nil
}

// Merge writes every entry with tx and returns how many were written.
func Merge(tx Runner, entries []lexicon.Entry) (int, error) {
	merges := MemoQuery()
	for i, e := range entries {
		pmap, n := Params(e)
		if _, err := tx.Run(merges(n), pmap); err != nil {
			return i, fmt.Errorf("merging %q: %w", e.Word, err)
		}
	}
	return len(entries), nil
}

// Store creates the indexes and merges entries, each in its own write
// transaction.
func Store(session Writer, entries []lexicon.Entry) (int, error) {
	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		return nil, CreateIndexes(tx)
	})
	if err != nil {
		return 0, err
	}
	n, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		count, err := Merge(tx, entries)
		return count, err
	})
	if err != nil {
		return 0, err
	}
	return n.(int), nil
}
