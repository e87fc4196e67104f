package asset

// DefaultTextures declares the glyph sheets, keyed by texture path
const DefaultTextures = `
background:
  color: "#4a4a6a"
  tile: true
  frames:
    - - '   .          *            .    '
      - '         .          .           '
      - ' *              .         *     '
      - '        .    *        .         '
      - '   .                        .   '
      - '            .     *    .        '
      - '  *    .                    .   '
      - '                .       *       '

player:
  color: "#7fdbff"
  frames:
    - ['  A  ', ' /#\ ', ' v.v ']
    - ['  A  ', ' /#\ ', ' .v. ']
    - ['  A  ', ' /#\ ', ' v:v ']
    - ['  A  ', ' /#\ ', ' :v: ']

ufo:
  color: "#2ecc40"
  frames:
    - [' \___/ ', '(o . .)', ' _/=\_ ']
    - [' \___/ ', '(. o .)', ' _/=\_ ']
    - [' \___/ ', '(. . o)', ' _/=\_ ']
    - [' \___/ ', '(. o .)', ' _/=\_ ']

projectile:
  color: "#ff4136"
  frames:
    - ['  |  ', '  |  ', '  :  ']

explosion:
  color: "#ff851b"
  frames:
    - ['     ', '  *  ', '     ']
    - ['  .  ', ' .*. ', '  .  ']
    - [' . . ', '. * .', ' . . ']
    - ['.   .', ' (*) ', '.   .']
    - ['  :  ', ':   :', '  :  ']
    - ['     ', '  .  ', '     ']
`

// DefaultPrefabs declares entity templates and the initial scene
const DefaultPrefabs = `
scene:
  background: [background]
  spaceship: [player, enemy]
  text: [controls]

prefabs:
  background:
    tag: background
    transform:
      position: [0, 0]
      scale: [1.8778, 1.1]
    velocity: [0.014, 0.004]
    mesh: {quads: 1}
    texture: {path: background, filter: linear}
    behavior: {kind: bounce, extent: 0.03}

  player:
    tag: player
    transform:
      position: [0, -0.7]
      scale: [0.1, 0.1]
    mesh: {quads: 4}
    texture: {path: player, filter: nearest}
    sprite:
      max_cycles: 0
      frames:
        - {duration: 0.15, offset: 0, count: 6}
        - {duration: 0.15, offset: 6, count: 6}
        - {duration: 0.15, offset: 12, count: 6}
        - {duration: 0.15, offset: 18, count: 6}
    aabb:
      min: [-0.80, -0.70]
      max: [0.82, 0.70]
    screen_bound: true

  enemy:
    tag: enemy
    transform:
      position: [0, 0.5]
      scale: [0.08, -0.08]
    mesh: {quads: 4}
    texture: {path: ufo, filter: nearest}
    sprite:
      max_cycles: 0
      frames:
        - {duration: 0.15, offset: 0, count: 6}
        - {duration: 0.15, offset: 6, count: 6}
        - {duration: 0.15, offset: 12, count: 6}
        - {duration: 0.15, offset: 18, count: 6}
    behavior: {kind: sine_sweep_x, amplitude: 0.4, frequency: 1}
    aabb:
      min: [-0.55, -0.50]
      max: [0.55, 0.50]
    health: 10

  projectile:
    tag: projectile
    transform:
      scale: [0.15, 0.15]
    velocity: [0, 2.6]
    mesh: {quads: 1}
    texture: {path: projectile, filter: nearest}
    aabb:
      min: [-0.11, -0.38]
      max: [0.07, 0.30]
    sound: {name: laser, gain: 0.8}
    off_screen_destroy: true

  explosion:
    tag: explosion
    transform:
      scale: [0.1, 0.1]
    mesh: {quads: 6}
    texture: {path: explosion, filter: nearest}
    sprite:
      max_cycles: 1
      frames:
        - {duration: 0.04, quad: 0}
        - {duration: 0.04, quad: 1}
        - {duration: 0.04, quad: 2}
        - {duration: 0.04, quad: 3}
        - {duration: 0.04, quad: 4}
        - {duration: 0.06, quad: 5}
    sound: {name: explosion_crunch, gain: 1.0}

  controls:
    tag: controls
    transform:
      position: [0, -0.95]
      scale: [1, 0.05]
    mesh: {quads: 1}
    text:
      content: "ARROWS move  SPACE fire  F3 debug  F6 vsync  F7 boxes  ESC quit"
      font: ubuntu
      color: "#aaaaaa"
`
