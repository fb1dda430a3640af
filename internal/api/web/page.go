package web

import (
	"html/template"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	remotev1 "github.com/osa030/moodbox/internal/api/remotev1"
	"github.com/osa030/moodbox/internal/app/playback"
)

var pageTemplate = template.Must(template.New("remote").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style nonce="{{.Nonce}}">
  html, body { margin: 0; height: 100%; background: #111; color: #eee; font-family: sans-serif; }
  #stage { position: relative; height: calc(100% - 4.5rem); }
  #menu { padding: 2rem; }
  #mood-list { list-style: none; margin: 0; padding: 0; }
  .mood-item { padding: .6rem 1rem; font-size: 1.4rem; border-radius: .4rem; cursor: pointer; }
  .mood-item.active { background: #2d6cdf; }
  #player-box { position: absolute; inset: 0; }
  #overlay { position: absolute; left: 1rem; bottom: 1rem; padding: .4rem .8rem; background: rgba(0,0,0,.6); border-radius: .3rem; pointer-events: none; }
  .hidden { visibility: hidden; }
  #controls { display: flex; justify-content: center; gap: .5rem; padding: 1rem; }
  #controls button { min-width: 5rem; padding: .5rem; font-size: 1rem; }
</style>
</head>
<body>
<div id="stage">
  <div id="player-box" class="{{if not .Playing}}hidden{{end}}"><div id="{{.ElementID}}"></div></div>
  <div id="menu" class="{{if .Playing}}hidden{{end}}">
    <ul id="mood-list">
    {{- range $i, $label := .Moods}}
      <li class="mood-item{{if eq $i $.Selected}} active{{end}}" data-index="{{$i}}">{{$label}}</li>
    {{- end}}
    </ul>
  </div>
  <div id="overlay">{{.Overlay}}</div>
</div>
<div id="controls">
{{- range .Buttons}}
  <button type="button" data-button="{{.}}">{{.}}</button>
{{- end}}
</div>
<script nonce="{{.Nonce}}">
(function () {
  var token = new URLSearchParams(location.search).get("token") || "";
  var service = "/{{.Service}}/";
  var player = null;
  var apiReady = false;
  var pending = null;

  function rpc(method, body) {
    return fetch(service + method, {
      method: "POST",
      headers: { "Content-Type": "application/json", "X-Remote-Token": token },
      body: JSON.stringify(body || {})
    }).then(function (res) {
      if (!res.ok) { return res.json().then(function (e) { throw new Error(e.message || res.statusText); }); }
      return res.json();
    });
  }

  function render(view) {
    if (!view) { return; }
    var items = document.querySelectorAll("#mood-list .mood-item");
    items.forEach(function (li, i) { li.classList.toggle("active", i === view.selected); });
    document.getElementById("overlay").textContent = view.overlay;
    var playing = view.mode === "playing";
    document.getElementById("menu").classList.toggle("hidden", playing);
    document.getElementById("player-box").classList.toggle("hidden", !playing);
  }

  function report(type, state, errorCode) {
    var ev = { type: type, index: -1 };
    if (state !== undefined) { ev.state = state; }
    if (errorCode !== undefined) { ev.errorCode = errorCode; }
    if (player && player.getPlaylistIndex) {
      ev.index = player.getPlaylistIndex();
      ev.playlist = player.getPlaylist() || undefined;
    }
    rpc("ReportPlayerEvent", ev).catch(function (err) { console.warn("report failed", err); });
  }

  function create(opts) {
    if (!apiReady) { pending = opts; return; }
    if (player) { player.destroy(); player = null; }
    player = new YT.Player(opts.elementId, {
      width: opts.width,
      height: opts.height,
      playerVars: opts.playerVars,
      events: {
        onReady: function () { report("ready"); },
        onStateChange: function (e) { report("state_change", e.data); },
        onError: function (e) { report("error", undefined, e.data); }
      }
    });
  }

  function execute(cmd) {
    if (cmd.name === "create") { create(cmd.options); return; }
    if (!player || !player.loadPlaylist) { return; }
    switch (cmd.name) {
    case "loadPlaylist": player.loadPlaylist({ list: cmd.list, listType: cmd.listType, index: cmd.index }); break;
    case "playVideo": player.playVideo(); break;
    case "pauseVideo": player.pauseVideo(); break;
    case "nextVideo": player.nextVideo(); break;
    case "previousVideo": player.previousVideo(); break;
    }
  }

  window.onYouTubeIframeAPIReady = function () {
    apiReady = true;
    if (pending) { var opts = pending; pending = null; create(opts); }
  };

  var events = new EventSource("/events?token=" + encodeURIComponent(token));
  ["initial_state", "view"].forEach(function (type) {
    events.addEventListener(type, function (e) { render(JSON.parse(e.data).view); });
  });
  events.addEventListener("command", function (e) { execute(JSON.parse(e.data).command); });

  function press(button) {
    rpc("Press", { button: button }).then(function (res) { render(res.view); })
      .catch(function (err) { console.warn("press failed", err); });
  }

  document.querySelectorAll("#controls button").forEach(function (b) {
    b.addEventListener("click", function () { press(b.dataset.button); });
  });
  document.querySelectorAll("#mood-list .mood-item").forEach(function (li) {
    li.addEventListener("click", function () {
      rpc("Select", { index: parseInt(li.dataset.index, 10) }).then(function (res) { render(res.view); });
    });
  });

  var keys = { Escape: "menu", Backspace: "menu", ArrowRight: "forward", ArrowLeft: "backward", ArrowDown: "down", Enter: "center", " ": "center" };
  document.addEventListener("keydown", function (e) {
    var button = keys[e.key];
    if (!button) { return; }
    e.preventDefault();
    press(button);
  });
})();
</script>
<script nonce="{{.Nonce}}" src="https://www.youtube.com/iframe_api"></script>
</body>
</html>
`))

type pageData struct {
	Title     string
	Nonce     string
	ElementID string
	Service   string
	Moods     []string
	Selected  int
	Overlay   string
	Playing   bool
	Buttons   []string
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	view := s.session.View()

	buttons := make([]string, 0, len(playback.Buttons()))
	for _, b := range playback.Buttons() {
		buttons = append(buttons, b.String())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, pageData{
		Title:     s.title,
		Nonce:     nonceFromContext(r.Context()),
		ElementID: s.elementID,
		Service:   remotev1.RemoteServiceName,
		Moods:     view.Moods,
		Selected:  view.Selected,
		Overlay:   view.Overlay,
		Playing:   view.Mode == playback.ModePlaying,
		Buttons:   buttons,
	}); err != nil {
		zlog.Error().Msgf("failed to render remote page: %v", err)
	}
}
