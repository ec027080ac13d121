package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/behrlich/cubecost/internal/cfen"
	"github.com/behrlich/cubecost/internal/cube"
	"github.com/behrlich/cubecost/internal/evaluator"
	"github.com/behrlich/cubecost/internal/store"
)

type SolveRequest struct {
	Scramble  string `json:"scramble"`
	Algorithm string `json:"algorithm"`
	Evaluator string `json:"evaluator"`
	Start     string `json:"start,omitempty"`
}

type SolveResponse struct {
	Solution  string `json:"solution"`
	MoveCount int    `json:"move_count"`
	CostMs    int64  `json:"cost_ms"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Cube Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, select, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>Cube Solver</h1>
    <div class="container">
        <h2>Solve Your Cube</h2>
        <form id="solveForm">
            <div>
                <label>Scramble:</label><br>
                <input type="text" id="scramble" placeholder="R U R' U' F R F'" style="width: 300px;">
            </div>
            <div>
                <label>Algorithm:</label>
                <select id="algorithm">
                    <option value="kociemba">Kociemba</option>
                    <option value="naive">Naive</option>
                    <option value="mitm">Meet-in-the-middle</option>
                </select>
            </div>
            <div>
                <label>Evaluator:</label>
                <select id="evaluator">
                    <option value="uniform">Uniform</option>
                    <option value="blast">Blast machine</option>
                </select>
            </div>
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const scramble = document.getElementById('scramble').value;
            const algorithm = document.getElementById('algorithm').value;
            const evaluatorName = document.getElementById('evaluator').value;

            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ scramble, algorithm, evaluator: evaluatorName })
                });

                const result = await response.json();
                document.getElementById('result').innerHTML =
                    '<h3>Solution:</h3><p>' + result.solution + '</p>' +
                    '<p><strong>Moves:</strong> ' + result.move_count + '</p>' +
                    '<p><strong>Cost:</strong> ' + result.cost_ms + 'ms</p>';
                document.getElementById('result').style.display = 'block';
            } catch (error) {
                document.getElementById('result').innerHTML = '<p style="color: red;">Error: ' + error.message + '</p>';
                document.getElementById('result').style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	c := cube.Solved()
	if req.Start != "" {
		cfenState, err := cfen.Parse(req.Start)
		if err != nil {
			http.Error(w, fmt.Sprintf("Error parsing start CFEN: %v", err), http.StatusBadRequest)
			return
		}
		parsed, err := cfenState.ToCube()
		if err != nil {
			http.Error(w, fmt.Sprintf("Error converting CFEN to cube: %v", err), http.StatusBadRequest)
			return
		}
		c = *parsed
	}

	moves, err := cube.ParseSequence(req.Scramble)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error parsing scramble: %v", err), http.StatusBadRequest)
		return
	}
	c = c.ApplyAll(moves)

	ev, err := evaluator.Parse(req.Evaluator)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error parsing evaluator: %v", err), http.StatusBadRequest)
		return
	}

	solution, err := cube.Solve(req.Algorithm, ev, c)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error solving cube: %v", err), http.StatusInternalServerError)
		return
	}

	cost := ev.Eval(solution)

	if db, err := s.openHistory(); err == nil && db != nil {
		defer db.Close()
		if _, err := db.Record(store.Solve{
			Scramble:   req.Scramble,
			Algorithm:  req.Algorithm,
			Evaluator:  req.Evaluator,
			Solution:   cube.FormatSequence(solution),
			MoveCount:  len(solution),
			CostMillis: cost.Milliseconds(),
		}); err != nil {
			log.Printf("web: recording solve history: %v", err)
		}
	} else if err != nil {
		log.Printf("web: opening solve history: %v", err)
	}

	response := SolveResponse{
		Solution:  cube.FormatSequence(solution),
		MoveCount: len(solution),
		CostMs:    cost.Milliseconds(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
